package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/lumen-bot/lumen-api/docs"
	"github.com/lumen-bot/lumen-api/pkg/discord"
	"github.com/lumen-bot/lumen-api/pkg/stats"
	"github.com/lumen-bot/lumen-api/pkg/topgg"
)

type Api struct {
	version        string
	url            string
	allowedOrigins []string
	store          *stats.Store
	relay          *discord.Client
	publisher      *topgg.Publisher
	log            *zap.Logger
}

func NewApi(version, url string, allowedOrigins []string, store *stats.Store, relay *discord.Client, publisher *topgg.Publisher, log *zap.Logger) *Api {
	if log == nil {
		log = zap.NewNop()
	}
	return &Api{
		version:        version,
		url:            url,
		allowedOrigins: allowedOrigins,
		store:          store,
		relay:          relay,
		publisher:      publisher,
		log:            log,
	}
}

// Router assembles the public API surface. The caller is responsible for
// serving it and shutting it down.
func (api *Api) Router() *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(api.log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(api.log, true))
	r.Use(cors.New(api.corsConfig()))

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Lumen"
	docs.SwaggerInfo.Version = api.version
	docs.SwaggerInfo.Description = "Lumen Bot API"
	var schemes []string
	host := api.url
	if strings.HasPrefix(host, "http://") {
		schemes = append(schemes, "http")
		host = strings.Replace(host, "http://", "", 1)
	} else if strings.HasPrefix(host, "https://") {
		schemes = append(schemes, "https")
		host = strings.Replace(host, "https://", "", 1)
	}
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = schemes

	r.GET("/", handleHome(api))
	r.GET("/stats", handleGetStats(api))
	r.POST("/update_stats", handleUpdateStats(api))

	oauthGroup := r.Group("/oauth")
	oauthGroup.POST("/exchange", handleOauthExchange(api))
	oauthGroup.GET("/me", handleOauthMe(api))
	oauthGroup.GET("/guilds", handleOauthGuilds(api))

	botGroup := r.Group("/bot")
	botGroup.POST("/guilds_status", handleGuildsStatus(api))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func (api *Api) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := api.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	// the oauth endpoints read bearer tokens from the browser
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}

type HttpError struct {
	Error string `json:"error"`
	Raw   any    `json:"raw,omitempty"`
}

// abortWithRelayError translates any relay failure into the uniform error
// envelope, mirroring Discord's own status on rejections.
func abortWithRelayError(c *gin.Context, err error) {
	re := discord.AsRelay(err)
	c.AbortWithStatusJSON(re.HTTPStatus(), HttpError{
		Error: re.Message,
		Raw:   re.Raw,
	})
}
