package main

import (
	"errors"
	"miniSheet/contracts"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

// SetCellRequest.Raw is a pointer so an empty string clears the cell instead of failing `required`
type SetCellRequest struct {
	Raw *string `json:"raw" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"omitempty,url"`
}

type SubscribeResponse struct {
	CellId     string `json:"cell_id"`
	WebhookUrl string `json:"webhook_url"`
}

type EvaluateRequest struct {
	Formula   string                     `json:"formula" binding:"required"`
	Overrides map[string]contracts.Value `json:"overrides"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response, err := api.SheetRepository.SetCell(params.CellId, *request.Raw)

	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetGridAction(c *gin.Context) {
	c.JSON(http.StatusOK, api.SheetRepository.GetGrid())
}

func (api *ApiController) EvaluateAction(c *gin.Context) {
	request := EvaluateRequest{}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.SheetRepository.Evaluate(request.Formula, request.Overrides))
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	if err := c.ShouldBindUri(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	cell, err := api.SheetRepository.GetCell(params.CellId)
	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(cell.Id, request.WebhookUrl)

	c.JSON(http.StatusCreated, SubscribeResponse{
		CellId:     cell.Id,
		WebhookUrl: request.WebhookUrl,
	})
}
