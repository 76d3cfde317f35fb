package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GuildsStatusRequest struct {
	GuildIDs []string `json:"guild_ids"`
}

// GuildsStatus godoc
// @Summary Check Bot Guild Presence
// @Schemes POST
// @Description Check which of the given guilds the bot is currently a member of
// @Tags bot
// @Accept json
// @Produce json
// @Param request body GuildsStatusRequest true "Guild IDs to check"
// @Success 200 {object} discord.GuildPresenceResult
// @Failure 400 {object} HttpError
// @Failure 500 {object} HttpError
// @Router /bot/guilds_status [post]
func handleGuildsStatus(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req GuildsStatusRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, HttpError{
				Error: "invalid JSON body",
			})
			return
		}
		res, err := api.relay.CheckGuildPresence(c.Request.Context(), req.GuildIDs)
		if err != nil {
			abortWithRelayError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
