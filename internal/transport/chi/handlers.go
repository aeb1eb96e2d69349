package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/sahayata/internal/domain/eligibility/profile"
	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
	"github.com/kailas-cloud/sahayata/internal/domain/search/match"
	cataloguc "github.com/kailas-cloud/sahayata/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/sahayata/internal/usecase/health"
)

// Chat handles POST /api/chatbot/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Message == nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, "message is required")
		return
	}

	reply, err := s.chat.Answer(r.Context(), *req.Message, req.Language)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	schemes := make([]ChatScheme, len(reply.Schemes))
	for i := range reply.Schemes {
		schemes[i] = chatSchemeFromMatch(&reply.Schemes[i])
	}
	writeJSON(w, http.StatusOK, ChatResponse{
		Response: reply.Message,
		Schemes:  schemes,
		Language: reply.Language.String(),
	})
}

// CheckEligibility handles POST /api/schemes/check-eligibility.
func (s *Server) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	var req EligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.eligibility.Check(r.Context(), profileFromRequest(&req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rows := make([]EligibleScheme, len(res.Schemes))
	for i, e := range res.Schemes {
		rows[i] = eligibleToDTO(e)
	}
	writeJSON(w, http.StatusOK, EligibilityResponse{
		Success:         true,
		Count:           res.Count,
		EligibleSchemes: rows,
	})
}

// SearchSchemes handles GET /api/schemes/search.
func (s *Server) SearchSchemes(w http.ResponseWriter, r *http.Request) {
	var (
		text  string
		lang  string
		limit int
	)
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "query", q, &text); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter query: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "language", q, &lang); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter language: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter limit: "+err.Error())
		return
	}

	schemes, err := s.catalog.Search(r.Context(), text, lang, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := summaries(schemes)
	writeJSON(w, http.StatusOK, SearchResponse{Success: true, Count: len(items), Schemes: items})
}

// SchemesByCategory handles GET /api/schemes/category/{category}.
func (s *Server) SchemesByCategory(w http.ResponseWriter, r *http.Request) {
	var (
		category string
		limit    int
	)
	err := runtime.BindStyledParameterWithOptions("simple", "category", chi.URLParam(r, "category"), &category,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter category: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter limit: "+err.Error())
		return
	}

	schemes, err := s.catalog.ByCategory(r.Context(), category, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	items := summaries(schemes)
	writeJSON(w, http.StatusOK, CategoryResponse{Success: true, Category: category, Count: len(items), Schemes: items})
}

// GetScheme handles GET /api/schemes/{id}.
func (s *Server) GetScheme(w http.ResponseWriter, r *http.Request) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid format for parameter id: "+err.Error())
		return
	}

	sch, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	detail := make(map[string]any, len(scheme.TextColumns)+1)
	for col, v := range sch.Fields() {
		detail[col] = v
	}
	detail[scheme.ColumnID] = sch.ID
	writeJSON(w, http.StatusOK, SchemeDetailResponse{Success: true, Scheme: detail})
}

// Statistics handles GET /api/schemes/statistics.
func (s *Server) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := s.catalog.Statistics(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statisticsToDTO(st))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Backend: report.Backend,
		Checks:  checks,
	})
}

// ChatHealth handles GET /api/chatbot/health.
func (s *Server) ChatHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, ChatHealthResponse{
		Status:   string(report.Status),
		Backend:  report.Backend,
		Features: healthuc.Features,
	})
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "Sahayata API is running",
		Status:  "ok",
		Version: s.version,
		Endpoints: []string{
			"/api/chatbot/chat",
			"/api/chatbot/health",
			"/api/schemes/check-eligibility",
			"/api/schemes/search",
			"/api/schemes/statistics",
			"/health",
			"/metrics",
		},
	})
}

func chatSchemeFromMatch(m *match.Match) ChatScheme {
	sch := m.Scheme()
	t := m.Text()
	return ChatScheme{
		ID:                 m.ID(),
		SchemeName:         t.Name,
		Description:        m.Description(),
		Eligibility:        t.Eligibility,
		Benefits:           t.Benefits,
		ApplicationProcess: t.ApplicationProcess,
		SchemeType:         sch.SchemeType,
		Category:           sch.Category,
		OfficialLink:       sch.OfficialLink,
		BeneficiaryTags:    sch.BeneficiaryTags,
		Score:              m.Score(),
	}
}

func profileFromRequest(req *EligibilityRequest) profile.Profile {
	p := profile.Profile{
		Gender:       deref(req.Gender),
		Age:          req.Age,
		Occupation:   deref(req.Occupation),
		Location:     deref(req.Location),
		Caste:        deref(req.Caste),
		AnnualIncome: req.AnnualIncome,
	}
	if req.Disability != nil {
		p.Disability = *req.Disability
	}
	if req.Minority != nil {
		p.Minority = *req.Minority
	}
	return p
}

func eligibleToDTO(e profile.Eligible) EligibleScheme {
	return EligibleScheme{
		ID:              e.Scheme.ID,
		NameEN:          e.Scheme.EN.Name,
		NameTE:          e.Scheme.TE.Name,
		NameHI:          e.Scheme.HI.Name,
		Category:        e.Scheme.Category,
		SchemeType:      e.Scheme.SchemeType,
		OfficialLink:    e.Scheme.OfficialLink,
		BeneficiaryTags: e.Scheme.BeneficiaryTags,
		RelevanceScore:  e.Relevance,
	}
}

func summaries(ss []scheme.Scheme) []SchemeSummary {
	out := make([]SchemeSummary, len(ss))
	for i, s := range ss {
		out[i] = SchemeSummary{
			ID:           s.ID,
			NameEN:       s.EN.Name,
			NameTE:       s.TE.Name,
			NameHI:       s.HI.Name,
			Category:     s.Category,
			SchemeType:   s.SchemeType,
			OfficialLink: s.OfficialLink,
		}
	}
	return out
}

func statisticsToDTO(st cataloguc.Statistics) StatisticsResponse {
	cats := make([]CategoryCount, len(st.Categories))
	for i, c := range st.Categories {
		cats[i] = CategoryCount{Name: c.Name, Count: c.Count}
	}
	return StatisticsResponse{
		TotalSchemes:   st.Total,
		APSchemes:      st.State,
		CentralSchemes: st.Central,
		Categories:     cats,
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
