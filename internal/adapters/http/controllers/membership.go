package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/core/service"
)

type MembershipController struct {
	membershipService *service.MembershipService
}

func NewMembershipController(membershipService *service.MembershipService) *MembershipController {
	return &MembershipController{membershipService: membershipService}
}

// Profile godoc
// @Summary     Member profile
// @Description Returns the member tier, points and progress toward the next tier
// @Tags        membership
// @Produce     json
// @Success     200 {object} ProfileResponse
// @Router      /api/v1/membership [get]
func (mc *MembershipController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, NewProfileResponse(mc.membershipService.Profile(c.Request.Context())))
}

// Rewards godoc
// @Summary     Member rewards
// @Description Returns the rewards catalog with availability for the current points balance
// @Tags        membership
// @Produce     json
// @Success     200 {array} RewardResponse
// @Router      /api/v1/membership/rewards [get]
func (mc *MembershipController) Rewards(c *gin.Context) {
	rewards := mc.membershipService.Rewards(c.Request.Context())
	response := make([]RewardResponse, len(rewards))
	for i, r := range rewards {
		response[i] = RewardResponse{
			Title:       r.Title,
			Points:      r.Points,
			Description: r.Description,
			Icon:        NewIconResponse(r.Icon),
			Available:   r.Available,
		}
	}
	c.JSON(http.StatusOK, response)
}

// History godoc
// @Summary     Points history
// @Description Returns recent points transactions. Redemptions carry negative points
// @Tags        membership
// @Produce     json
// @Success     200 {array} PointsTransactionResponse
// @Router      /api/v1/membership/history [get]
func (mc *MembershipController) History(c *gin.Context) {
	history := mc.membershipService.History(c.Request.Context())
	response := make([]PointsTransactionResponse, len(history))
	for i, tx := range history {
		response[i] = PointsTransactionResponse{
			Kind:        string(tx.Kind),
			Points:      tx.Points,
			Description: tx.Description,
			Date:        tx.Date,
		}
	}
	c.JSON(http.StatusOK, response)
}
