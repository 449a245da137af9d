package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amalynlocs/salon-api/internal/models"
)

type styleListResponse struct {
	Styles []models.Style `json:"styles"`
}

func createStyle(t *testing.T, env *testEnv, token, name string) models.Style {
	t.Helper()

	w := env.do(t, http.MethodPost, "/admin/styles", token, map[string]any{
		"style": map[string]any{
			"name": name,
			"colors": map[string]string{
				"primary":   "#7c3aed",
				"secondary": "#f5f3ff",
			},
			"typography": map[string]string{
				"headingFont": "Playfair Display",
				"bodyFont":    "Inter",
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Style models.Style `json:"style"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Style.ID)
	return resp.Style
}

func TestStyleActivationIsExclusive(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	first := createStyle(t, env, token, "Lavender")
	second := createStyle(t, env, token, "Emerald")

	w := env.do(t, http.MethodPost, "/admin/styles/activate", token, map[string]string{
		"styleId": first.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assertOnlyActive := func(wantID string) {
		t.Helper()
		w := env.do(t, http.MethodGet, "/admin/styles", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list styleListResponse
		decodeBody(t, w, &list)
		require.Len(t, list.Styles, 2)

		activeCount := 0
		for _, st := range list.Styles {
			if st.IsActive {
				activeCount++
				require.Equal(t, wantID, st.ID)
			}
		}
		require.Equal(t, 1, activeCount)
	}

	assertOnlyActive(first.ID)

	// flipping to the second style deactivates the first in the same call
	w = env.do(t, http.MethodPost, "/admin/styles/activate", token, map[string]string{
		"styleId": second.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assertOnlyActive(second.ID)

	// storefront sees the winner without auth
	var active struct {
		Style *models.Style `json:"style"`
	}
	w = env.do(t, http.MethodGet, "/active-style", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &active)
	require.NotNil(t, active.Style)
	require.Equal(t, second.ID, active.Style.ID)
	require.True(t, active.Style.IsActive)
}

func TestActivateUnknownStyleIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/styles/activate", token, map[string]string{
		"styleId": "missing",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletingActiveStyleClearsPointer(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	st := createStyle(t, env, token, "Sunset")

	w := env.do(t, http.MethodPost, "/admin/styles/activate", token, map[string]string{
		"styleId": st.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, adminPath("/styles/%s", st.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var active struct {
		Style *models.Style `json:"style"`
	}
	w = env.do(t, http.MethodGet, "/active-style", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &active)
	require.Nil(t, active.Style)
}

func TestStyleUpdatePreservesUnpatchedFields(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	st := createStyle(t, env, token, "Lavender")

	w := env.do(t, http.MethodPut, adminPath("/styles/%s", st.ID), token, map[string]any{
		"style": map[string]any{"customCSS": ".hero { color: plum; }"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Style models.Style `json:"style"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, "Lavender", resp.Style.Name)
	require.Equal(t, "#7c3aed", resp.Style.Colors.Primary)
	require.Equal(t, ".hero { color: plum; }", resp.Style.CustomCSS)
}
