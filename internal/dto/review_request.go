package dto

type ReviewRequest struct {
	Username string      `json:"username"`
	Comment  string      `json:"comment"`
	Star     interface{} `json:"star"`
	Verified *bool       `json:"verified"`
}
