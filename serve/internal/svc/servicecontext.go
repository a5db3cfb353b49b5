package svc

import (
	"fmt"
	"strings"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/pusher"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/render"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/session"
	"github.com/HuXin0817/dots-and-boxes-chat/serve/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config       config.Config
	RedisClient  *redis.Redis
	Registry     *session.Registry
	Hub          *ViewHub
	RecordPusher *pusher.Pusher[message.Record]
	ViewPusher   *pusher.Pusher[message.ViewMessage]
}

func NewServiceContext(c config.Config) *ServiceContext {
	if c.MongoConf.PassWord != "" && strings.Contains(c.MongoConf.Url, "%s") {
		c.MongoConf.Url = fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
	}

	svcCtx := &ServiceContext{Config: c, Hub: NewViewHub()}
	interval := time.Duration(c.PushInterval) * time.Millisecond

	opts := []session.Option{
		session.WithPrefix(c.Game.Prefix),
		session.WithDefaultSize(c.Game.DefaultWidth, c.Game.DefaultHeight),
		session.WithMaxSize(c.Game.MaxWidth, c.Game.MaxHeight),
		session.WithLink(MoveLink(c.Domain)),
	}

	recorders := session.Recorders{session.LogRecorder{}}
	if c.WithMongo() {
		svcCtx.RecordPusher = pusher.NewPusher(
			pusher.WithPushLogic(newMongoPushLogic(c.MongoConf.Url, c.MongoConf.DataBaseName)),
			pusher.WithPushInterval[message.Record](interval),
			pusher.WithMaxBuffered[message.Record](c.MaxBufferedRecords),
		)
		svcCtx.RecordPusher.Start()
		recorders = append(recorders, &PusherRecorder{Pusher: svcCtx.RecordPusher})
	}
	opts = append(opts, session.WithRecorder(recorders))

	notifiers := session.Notifiers{svcCtx.Hub}
	if c.WithRedis() {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
		svcCtx.ViewPusher = pusher.NewPusher(
			pusher.WithPushLogic(newRedisPushLogic(svcCtx.RedisClient, c.ViewExpire)),
			pusher.WithPushInterval[message.ViewMessage](interval),
			pusher.WithMaxBuffered[message.ViewMessage](c.MaxBufferedViews),
		)
		svcCtx.ViewPusher.Start()
		opts = append(opts, session.WithGuard(NewRedisGuard(svcCtx.RedisClient, c.ChannelExpire)))
		notifiers = append(notifiers, session.NotifierFunc(svcCtx.publish))
	}
	opts = append(opts, session.WithNotifier(notifiers))

	svcCtx.Registry = session.NewRegistry(opts...)
	return svcCtx
}

// MoveLink points undrawn lines of rich boards at the move route.
func MoveLink(domain string) render.LinkFunc {
	return func(a, b int) string {
		return fmt.Sprintf("http://%s/move/%d/%d", domain, a, b)
	}
}

func (s *ServiceContext) LinkURL(player string) string {
	return fmt.Sprintf("http://%s/link/%s", s.Config.Domain, player)
}

// Stop flushes whatever the pushers still hold.
func (s *ServiceContext) Stop() {
	if s.RecordPusher != nil {
		s.RecordPusher.Stop()
	}
	if s.ViewPusher != nil {
		s.ViewPusher.Stop()
	}
	logx.Close()
}
