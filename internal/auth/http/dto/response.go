package dto

// IssueTokenResponse contains the bearer token returned by the operator.
type IssueTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MapIssueTokenResponse wraps a raw access token.
func MapIssueTokenResponse(accessToken string) IssueTokenResponse {
	return IssueTokenResponse{AccessToken: accessToken, TokenType: "Bearer"}
}
