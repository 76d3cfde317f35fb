package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/lumen-bot/lumen-api/pkg/stats"
)

type HomeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type UpdateStatsResponse struct {
	Success bool           `json:"success"`
	Updated stats.BotStats `json:"updated"`
}

// Home godoc
// @Summary Service Status
// @Schemes GET
// @Description Confirm the relay is up and report its version
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func handleHome(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HomeResponse{
			Status:  "online",
			Message: "Lumen API is up and running",
			Version: api.version,
		})
	}
}

// GetStats godoc
// @Summary Get Bot Stats
// @Schemes GET
// @Description Get the bot statistics last reported by the bot process
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} stats.BotStats
// @Router /stats [get]
func handleGetStats(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, api.store.Snapshot())
	}
}

// UpdateStats godoc
// @Summary Update Bot Stats
// @Schemes POST
// @Description Merge a stats patch reported by the bot process
// @Tags stats
// @Accept json
// @Produce json
// @Param patch body map[string]interface{} true "Fields to merge into the stats record"
// @Success 200 {object} UpdateStatsResponse
// @Router /update_stats [post]
func handleUpdateStats(api *Api) func(c *gin.Context) {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindBodyWith(&patch, binding.JSON); err != nil {
			// an absent or malformed patch is an empty patch
			patch = nil
		}
		updated := api.store.Apply(patch)
		go api.publisher.PublishServerCount(updated.Servers)
		c.JSON(http.StatusOK, UpdateStatsResponse{
			Success: true,
			Updated: updated,
		})
	}
}
