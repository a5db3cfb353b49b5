package config

import (
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	ListenOn string
	// Domain is the host rich boards link their lines to.
	Domain string
	Game   struct {
		Prefix        string `json:",default=tii!"`
		DefaultWidth  int    `json:",default=4"`
		DefaultHeight int    `json:",default=4"`
		MaxWidth      int    `json:",default=25"`
		MaxHeight     int    `json:",default=20"`
	}
	// ChannelExpire bounds, in seconds, how long a channel stays claimed in Redis.
	ChannelExpire int `json:",default=86400"`
	ViewExpire    int `json:",default=120"`
	PushInterval  int `json:",default=500"`
	// MaxBufferedRecords and MaxBufferedViews bound what is kept while a
	// store is unreachable.
	MaxBufferedRecords int             `json:",default=100000"`
	MaxBufferedViews   int             `json:",default=1000"`
	Redis              redis.RedisConf `json:",optional"`
	MongoConf          struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",optional"`
		PassWord     string `json:",optional"`
	} `json:",optional"`
}

func (c Config) WithRedis() bool { return c.Redis.Host != "" }

func (c Config) WithMongo() bool { return c.MongoConf.Url != "" }
