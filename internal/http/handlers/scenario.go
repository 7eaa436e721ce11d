package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/torvund/wildskills-backend/internal/domain"
	"github.com/torvund/wildskills-backend/internal/http/response"
	"github.com/torvund/wildskills-backend/internal/services"
)

type ScenarioHandler struct {
	scenarioService services.ScenarioService
}

func NewScenarioHandler(scenarioService services.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{scenarioService: scenarioService}
}

type scenarioChoiceRequest struct {
	Text          string `json:"text"`
	Outcome       string `json:"outcome"`
	Survivability int    `json:"survivability"`
}

type scenarioRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	MediaType   string                  `json:"mediaType"`
	MediaURL    string                  `json:"mediaUrl"`
	Difficulty  int                     `json:"difficulty"`
	Choices     []scenarioChoiceRequest `json:"choices"`
}

func (req *scenarioRequest) toDomain() types.Scenario {
	scenario := types.Scenario{
		Title:       req.Title,
		Description: req.Description,
		MediaType:   req.MediaType,
		MediaURL:    req.MediaURL,
		Difficulty:  req.Difficulty,
	}
	for _, choice := range req.Choices {
		scenario.Choices = append(scenario.Choices, types.ScenarioChoice{
			ChoiceText:    choice.Text,
			Outcome:       choice.Outcome,
			Survivability: choice.Survivability,
		})
	}
	return scenario
}

func (sh *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios, err := sh.scenarioService.ListScenarios(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, scenarios)
}

func (sh *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	scenario := req.toDomain()
	created, err := sh.scenarioService.CreateScenario(c.Request.Context(), &scenario)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondCreated(c, created)
}

func (sh *ScenarioHandler) UpdateScenario(c *gin.Context) {
	scenarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	scenario := req.toDomain()
	scenario.ID = scenarioID
	updated, err := sh.scenarioService.UpdateScenario(c.Request.Context(), &scenario)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, updated)
}

func (sh *ScenarioHandler) DeleteScenario(c *gin.Context) {
	scenarioID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := sh.scenarioService.DeleteScenario(c.Request.Context(), scenarioID); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true})
}
