package responses

import "seroter.com/ordersheet/model"

type ExportResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type RunReportResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    model.RunReport `json:"data"`
}
