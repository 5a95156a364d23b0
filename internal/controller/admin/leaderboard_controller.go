package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itianclub/aptitude-quiz/internal/dto"
	"github.com/itianclub/aptitude-quiz/internal/service"
	"github.com/rs/zerolog/log"
)

type LeaderboardController struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardController(leaderboardService service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// Leaderboard godoc
// @Summary (Admin) Aggregate leaderboard over submitted quizzes
// @Tags Admin
// @Produce json
// @Success 200 {object} dto.LeaderboardDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/admin/leaderboard [get]
func (c *LeaderboardController) Leaderboard(ctx *gin.Context) {
	board, err := c.leaderboardService.Leaderboard()
	if err != nil {
		log.Error().Err(err).Msg("Admin Leaderboard: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load leaderboard data"})
		return
	}
	ctx.JSON(http.StatusOK, board)
}
