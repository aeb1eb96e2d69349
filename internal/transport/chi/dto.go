package chi

// ErrorCode is a machine-readable error category.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeSchemeNotFound   ErrorCode = "scheme_not_found"
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ChatRequest is the body of POST /api/chatbot/chat. Message is required but
// may be blank.
type ChatRequest struct {
	Message  *string `json:"message"`
	Language string  `json:"language"`
}

// ChatScheme is one ranked scheme in a chat reply.
type ChatScheme struct {
	ID                 int64  `json:"id"`
	SchemeName         string `json:"scheme_name"`
	Description        string `json:"description"`
	Eligibility        string `json:"eligibility"`
	Benefits           string `json:"benefits"`
	ApplicationProcess string `json:"application_process"`
	SchemeType         string `json:"scheme_type"`
	Category           string `json:"category"`
	OfficialLink       string `json:"official_link"`
	BeneficiaryTags    string `json:"beneficiary_tags"`
	Score              int    `json:"score"`
}

// ChatResponse is the chat reply.
type ChatResponse struct {
	Response string       `json:"response"`
	Schemes  []ChatScheme `json:"schemes"`
	Language string       `json:"language"`
}

// EligibilityRequest is the body of POST /api/schemes/check-eligibility.
// Absent and null attributes are not supplied.
type EligibilityRequest struct {
	Gender       *string `json:"gender"`
	Age          *int    `json:"age"`
	Occupation   *string `json:"occupation"`
	Location     *string `json:"location"`
	Caste        *string `json:"caste"`
	Disability   *bool   `json:"disability"`
	Minority     *bool   `json:"minority"`
	AnnualIncome *int64  `json:"annual_income"`
}

// EligibleScheme is one ranked row of an eligibility answer.
type EligibleScheme struct {
	ID              int64  `json:"id"`
	NameEN          string `json:"name_en"`
	NameTE          string `json:"name_te"`
	NameHI          string `json:"name_hi"`
	Category        string `json:"category"`
	SchemeType      string `json:"scheme_type"`
	OfficialLink    string `json:"official_link"`
	BeneficiaryTags string `json:"beneficiary_tags"`
	RelevanceScore  int    `json:"relevance_score"`
}

// EligibilityResponse is the eligibility answer.
type EligibilityResponse struct {
	Success         bool             `json:"success"`
	Count           int              `json:"count"`
	EligibleSchemes []EligibleScheme `json:"eligible_schemes"`
}

// SchemeSummary is a scheme in browse listings.
type SchemeSummary struct {
	ID           int64  `json:"id"`
	NameEN       string `json:"scheme_name_en"`
	NameTE       string `json:"scheme_name_te"`
	NameHI       string `json:"scheme_name_hi"`
	Category     string `json:"category"`
	SchemeType   string `json:"scheme_type"`
	OfficialLink string `json:"official_link"`
}

// SearchResponse lists schemes matching a plain lookup.
type SearchResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Schemes []SchemeSummary `json:"schemes"`
}

// CategoryResponse lists schemes of one category.
type CategoryResponse struct {
	Success  bool            `json:"success"`
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Schemes  []SchemeSummary `json:"schemes"`
}

// SchemeDetailResponse carries every column of one scheme.
type SchemeDetailResponse struct {
	Success bool           `json:"success"`
	Scheme  map[string]any `json:"scheme"`
}

// CategoryCount is one row of the statistics breakdown.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatisticsResponse summarizes the catalog.
type StatisticsResponse struct {
	TotalSchemes   int             `json:"total_schemes"`
	APSchemes      int             `json:"ap_schemes"`
	CentralSchemes int             `json:"central_schemes"`
	Categories     []CategoryCount `json:"categories"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Backend string            `json:"backend"`
	Checks  map[string]string `json:"checks"`
}

// ChatHealthResponse advertises the chat search features.
type ChatHealthResponse struct {
	Status   string   `json:"status"`
	Backend  string   `json:"backend"`
	Features []string `json:"features"`
}

// RootResponse is the service banner.
type RootResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
