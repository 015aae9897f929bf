/*
Package cache provides an interface to the external key-value store. It
should not be of any concern to the callee where the store is, simply
that it exists and will hold values for as long as the store chooses to.

The store owns expiry and eviction; nothing more than that is promised.
*/
package cache
