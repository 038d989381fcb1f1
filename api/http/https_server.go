package http

import (
	"context"
	nethttp "net/http"

	"OssLarare/internal/config"
	"OssLarare/internal/initial"
	"OssLarare/internal/metrics"
	jwtMiddleware "OssLarare/internal/middleware/jwt"
	contactService "OssLarare/internal/modules/contact/application/service"
	contactEntity "OssLarare/internal/modules/contact/domain/entity"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	"OssLarare/internal/modules/contact/infrastructure/event"
	"OssLarare/internal/modules/contact/infrastructure/mq"
	contactHandler "OssLarare/internal/modules/contact/interface/http"
	contactTool "OssLarare/internal/modules/contact/interface/mcp"
	"OssLarare/pkg/redis"
	"OssLarare/pkg/ssl"
	"OssLarare/pkg/ws"
	"OssLarare/pkg/zlog"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server 持有 gin 引擎以及退出时需要释放的资源
type Server struct {
	GE        *gin.Engine
	publisher mq.Publisher
}

// NewServer 按配置组装存储、事件、通知与路由
func NewServer(conf *config.Config) (*Server, error) {
	edgeRepo, err := initial.NewContactEdgeRepository(conf)
	if err != nil {
		return nil, err
	}
	eventPub, mqPub, err := initial.NewContactEventPublisher(conf.KafkaConfig)
	if err != nil {
		return nil, err
	}
	s := &Server{publisher: mqPub}
	s.GE = NewEngine(conf, edgeRepo, eventPub)
	return s, nil
}

// NewEngine 组装路由；eventPub 可以为 nil
func NewEngine(conf *config.Config, edgeRepo contactRepository.ContactEdgeRepository, eventPub contactRepository.ContactEventPublisher) *gin.Engine {
	outcomes := make([]string, 0, len(contactEntity.AllOutcomes()))
	for _, o := range contactEntity.AllOutcomes() {
		outcomes = append(outcomes, o.String())
	}
	metrics.Register(prometheus.DefaultRegisterer, outcomes...)

	GE := gin.New()
	GE.Use(gin.Recovery(), accessLog())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	GE.Use(cors.New(corsConfig))
	GE.Use(ssl.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port, conf.MainConfig.TLS))

	wsHub := ws.NewHub()

	opts := []contactService.Option{contactService.WithNotifier(event.NewWsContactNotifier(wsHub))}
	if eventPub != nil {
		opts = append(opts, contactService.WithPublisher(eventPub))
	}
	contactSvc := contactService.NewContactService(edgeRepo, opts...)

	contactH := contactHandler.NewContactHandler(contactSvc)
	wsH := contactHandler.NewWsHandler(wsHub)

	GE.GET("/wss", wsH.Connect)
	GE.GET("/metrics", gin.WrapH(promhttp.Handler()))
	GE.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := GE.Group("/")
	authed.Use(jwtMiddleware.Auth())

	if conf.MCPConfig.Enabled {
		mcpServer := contactTool.NewServer(conf.MCPConfig.Name, conf.MCPConfig.Version, contactSvc)
		mcpHTTP := server.NewStreamableHTTPServer(mcpServer,
			server.WithEndpointPath("/mcp"),
			server.WithHTTPContextFunc(func(ctx context.Context, r *nethttp.Request) context.Context {
				return contactTool.WithOwner(ctx, contactTool.OwnerFrom(r.Context()))
			}))
		// 工具作用于 token 中的用户
		authed.Any("/mcp", func(c *gin.Context) {
			ctx := contactTool.WithOwner(c.Request.Context(), c.GetString("uuid"))
			mcpHTTP.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
		})
	}

	authed.GET("/auth/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"uuid":     c.GetString("uuid"),
			"username": c.GetString("username"),
		})
	})
	authed.POST("/contact/toggleContact", contactH.ToggleContact)
	authed.POST("/contact/getContactStatus", contactH.GetContactStatus)
	authed.POST("/contact/getContactList", contactH.GetContactList)

	return GE
}

// Close 释放 Kafka / Redis 连接
func (s *Server) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			zlog.Warn("close kafka publisher failed", zap.Error(err))
		}
	}
	if err := redis.Close(); err != nil {
		zlog.Warn("close redis failed", zap.Error(err))
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		zlog.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("uuid", c.GetString("uuid")))
	}
}
