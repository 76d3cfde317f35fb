package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ExchangeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

// bearerToken pulls the token out of an Authorization header with a
// case-insensitive Bearer scheme. Empty means absent, malformed, or blank;
// all three are rejected the same way before any upstream call.
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// OauthExchange godoc
// @Summary Exchange OAuth2 Code
// @Schemes POST
// @Description Trade an authorization code for a Discord token payload using the relay's client credentials
// @Tags oauth
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Authorization code and redirect URI"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Failure 502 {object} HttpError
// @Router /oauth/exchange [post]
func handleOauthExchange(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req ExchangeRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, HttpError{
				Error: "invalid JSON body",
			})
			return
		}
		payload, err := api.relay.ExchangeCode(c.Request.Context(), req.Code, req.RedirectURI)
		if err != nil {
			abortWithRelayError(c, err)
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

// OauthMe godoc
// @Summary Get Current User
// @Schemes GET
// @Description Fetch the Discord profile of the user the bearer token belongs to
// @Tags oauth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access token>"
// @Success 200 {object} discordgo.User
// @Failure 401 {object} HttpError
// @Failure 502 {object} HttpError
// @Router /oauth/me [get]
func handleOauthMe(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		user, err := api.relay.FetchSelf(c.Request.Context(), bearerToken(c))
		if err != nil {
			abortWithRelayError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// OauthGuilds godoc
// @Summary Get Current User Guilds
// @Schemes GET
// @Description Fetch the guilds the bearer token's user belongs to
// @Tags oauth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <access token>"
// @Success 200 {object} []discordgo.UserGuild
// @Failure 401 {object} HttpError
// @Failure 502 {object} HttpError
// @Router /oauth/guilds [get]
func handleOauthGuilds(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		guilds, err := api.relay.FetchGuilds(c.Request.Context(), bearerToken(c))
		if err != nil {
			abortWithRelayError(c, err)
			return
		}
		c.JSON(http.StatusOK, guilds)
	}
}
