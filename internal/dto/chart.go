package dto

import "github.com/noah-isme/trackme-api/internal/models"

// ChartResponse carries parallel label/value series plus optional pie slices.
type ChartResponse struct {
	Labels  []string            `json:"labels"`
	Data    []int               `json:"data"`
	PieData []models.LabelValue `json:"pieData"`
}
