package dto

type GenerateTemplateRequest struct {
	CaseId       string `json:"case_id" validate:"required,uuid"`
	TemplateType string `json:"template_type" validate:"required"`
	Context      string `json:"context"`
}

type GenerateTemplateResponse struct {
	TemplateType string   `json:"template_type"`
	Draft        string   `json:"draft"`
	Sources      []string `json:"sources"`
}
