package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeldman/termsmith/internal/config"
	"github.com/mfeldman/termsmith/internal/profilestore"
	"github.com/mfeldman/termsmith/internal/types"
)

func testAuthConfig(t *testing.T) *config.AuthConfig {
	t.Helper()
	hash, err := config.HashPassword("admin-pass")
	require.NoError(t, err)
	return &config.AuthConfig{
		JWTSecret:         "test-secret",
		TokenTTLHours:     1,
		AdminPasswordHash: hash,
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	profiles, err := profilestore.New(t.TempDir())
	require.NoError(t, err)

	authCfg := testAuthConfig(t)
	return &Server{
		profiles: profiles,
		tokens:   NewTokenService(authCfg),
		authCfg:  authCfg,
	}
}

func storedProfile(t *testing.T, s *Server) *types.CompanyProfile {
	t.Helper()
	created, err := s.profiles.Create(&types.CompanyProfile{
		ProfileName: "Acme SaaS",
		Organization: types.OrganizationInfo{
			CompanyLegalName:    "Acme Corp",
			RegisteredAddress:   "1 Main St",
			PrivacyEmail:        "privacy@acme.com",
			LegalNoticesEmail:   "legal@acme.com",
			JurisdictionsServed: []types.Jurisdiction{types.JurisdictionUS},
			EffectiveDate:       "2026-01-01",
		},
		Product:  types.ProductInfo{ProductName: "Acme App"},
		Audience: types.AudienceEligibility{MinimumAge: 13},
		AcceptableUse: types.AcceptableUsePolicy{
			ProhibitedActs: []string{"illegal activity"},
		},
		IntellectualProperty: types.IntellectualProperty{ServiceIPRetainedByCompany: true},
		Changes:              types.ChangesPolicy{ChangeNoticeMethod: []string{"email"}},
		Disclaimers:          types.Disclaimers{LiabilityCapDescription: "12 months of fees"},
		DisputeResolution:    types.DisputeResolution{DisputePath: "courts", Venue: "Delaware"},
	})
	require.NoError(t, err)
	return created
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService(testAuthConfig(t))

	token, err := svc.IssueToken()
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestTokenServiceRejectsBadToken(t *testing.T) {
	svc := NewTokenService(testAuthConfig(t))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", func() string {
			other := NewTokenService(&config.AuthConfig{JWTSecret: "other-secret", TokenTTLHours: 1})
			tok, _ := other.IssueToken()
			return tok
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestHandleIssueToken(t *testing.T) {
	s := testServer(t)

	t.Run("valid password", func(t *testing.T) {
		body := bytes.NewBufferString(`{"password":"admin-pass"}`)
		w := httptest.NewRecorder()
		s.handleIssueToken(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", body))

		require.Equal(t, http.StatusOK, w.Code)
		var resp tokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 3600, resp.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := bytes.NewBufferString(`{"password":"wrong"}`)
		w := httptest.NewRecorder()
		s.handleIssueToken(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", body))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		body := bytes.NewBufferString("{broken")
		w := httptest.NewRecorder()
		s.handleIssueToken(w, httptest.NewRequest(http.MethodPost, "/api/auth/token", body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	s := testServer(t)
	protected := s.requireAuth(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	token, err := s.tokens.IssueToken()
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{"valid bearer", "Bearer " + token, http.StatusOK},
		{"case-insensitive scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestProfileCRUDHandlers(t *testing.T) {
	s := testServer(t)
	created := storedProfile(t, s)

	t.Run("get", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profiles/"+created.ProfileID, nil)
		req.SetPathValue("id", created.ProfileID)
		w := httptest.NewRecorder()
		s.handleGetProfile(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got types.CompanyProfile
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "Acme SaaS", got.ProfileName)
	})

	t.Run("get missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/profiles/x", nil)
		req.SetPathValue("id", "00000000-0000-0000-0000-000000000000")
		w := httptest.NewRecorder()
		s.handleGetProfile(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		s.handleListProfiles(w, httptest.NewRequest(http.MethodGet, "/api/profiles", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var summaries []profilestore.Summary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&summaries))
		assert.Len(t, summaries, 1)
	})

	t.Run("create invalid", func(t *testing.T) {
		body := bytes.NewBufferString(`{"profile_name":""}`)
		w := httptest.NewRecorder()
		s.handleCreateProfile(w, httptest.NewRequest(http.MethodPost, "/api/profiles", body))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/profiles/"+created.ProfileID, nil)
		req.SetPathValue("id", created.ProfileID)
		w := httptest.NewRecorder()
		s.handleDeleteProfile(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)

		req = httptest.NewRequest(http.MethodDelete, "/api/profiles/"+created.ProfileID, nil)
		req.SetPathValue("id", created.ProfileID)
		w = httptest.NewRecorder()
		s.handleDeleteProfile(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGenerateRejectsInvalidRequest(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"broken JSON", "{broken"},
		{"no docs", `{"product_vars":{"product_name":"Acme App","company_legal":"Acme Corp","contact_email":"legal@acme.com"},"docs":[],"jurisdictions":["US"]}`},
		{"unknown doc type", `{"product_vars":{"product_name":"Acme App","company_legal":"Acme Corp","contact_email":"legal@acme.com"},"docs":["contract"],"jurisdictions":["US"]}`},
		{"bad contact email", `{"product_vars":{"product_name":"Acme App","company_legal":"Acme Corp","contact_email":"nope"},"docs":["tos"],"jurisdictions":["US"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(tt.body))
			s.handleGenerate(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGenerateResponseJSONShape(t *testing.T) {
	resp := buildGenerateResponse(map[types.DocType]string{
		types.DocTypeToS:     "# Terms of Service\n\nBody.",
		types.DocTypePrivacy: "# Privacy Policy\n\nBody.",
	}, nil)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "tos_md")
	assert.Contains(t, got, "privacy_md")
	assert.Contains(t, got, "gaps")
}

func TestHandleConfig(t *testing.T) {
	s := testServer(t)

	w := httptest.NewRecorder()
	s.handleConfig(w, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		DocTypes      []string          `json:"doc_types"`
		Tones         []string          `json:"tones"`
		Jurisdictions map[string]string `json:"jurisdictions"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.ElementsMatch(t, []string{"tos", "privacy"}, resp.DocTypes)
	assert.ElementsMatch(t, []string{"plain", "formal"}, resp.Tones)
	assert.Equal(t, "United States", resp.Jurisdictions["US"])
}
