package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	Redis    redis.RedisConf
	Channels []string
	// Interval is the pause, in milliseconds, between two rounds over Channels.
	Interval int `json:",default=1000"`
}

var (
	ConfigFile  = flag.String("f", "etc/relay.yaml", "the config file")
	RelayConf   Config
	RedisClient *redis.Redis
)

func initConfig() {
	flag.Parse()
	conf.MustLoad(*ConfigFile, &RelayConf)
	RelayConf.MustSetUp()

	RedisClient = redis.MustNewRedis(RelayConf.Redis)
}
