package config

import (
	"github.com/golang/glog"

	goconf "github.com/robfig/config"
)

// ConfigFilePath is the path to the config file
const ConfigFilePath string = "/etc/stash/api.conf"

// APISection is the [stash] section of the config file
const APISection string = "stash"

// Config file keys
const (
	Environment = "environment"

	ListenPort = "listen_port"

	RedisHost     = "redis_host"
	RedisPort     = "redis_port"
	RedisDatabase = "redis_database"
)

var configRequiredStrings = []string{
	Environment,
	RedisHost,
}

var configRequiredInt64s = []string{
	ListenPort,
	RedisDatabase,
	RedisPort,
}

// ConfigStrings contains the string values for the given config keys
var ConfigStrings = map[string]string{}

// ConfigInt64s contains the int64 values for the given config keys
var ConfigInt64s = map[string]int64{}

func init() {
	c, err := goconf.ReadDefault(ConfigFilePath)
	if err != nil {
		glog.Fatal(err)
	}

	for _, key := range configRequiredStrings {
		s, err := c.String(APISection, key)
		if err != nil {
			glog.Fatal(err)
		}
		ConfigStrings[key] = s
	}

	for _, key := range configRequiredInt64s {
		ii, err := c.Int(APISection, key)
		if err != nil {
			glog.Fatal(err)
		}
		ConfigInt64s[key] = int64(ii)
	}
}
