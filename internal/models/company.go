package models

// Company is a row of the companies table.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyInput carries the writable company fields as sent by a client.
// Absent fields stay nil and reach the database as NULL.
type CompanyInput struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
