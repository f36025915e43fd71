package dto

import "github.com/yigit/conexao/internal/app/models"

// CreateReportRequest represents the report form
type CreateReportRequest struct {
	Reason   string `form:"reason" binding:"required,oneof=spam inappropriate fraud harassment other"`
	Comments string `form:"comments" binding:"max=500"`
}

// ReportView resolves a report's reporter and target for the admin UI.
type ReportView struct {
	Report      *models.Report
	Reporter    *models.User
	TargetLabel string
	TargetLink  string
}
