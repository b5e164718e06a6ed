package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ouibooking.backend/internal/domain/entities"
)

func TestWizardHandler_FullFlow(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@ouibooking.com", entities.UserRoleUser)

	// start a draft; interface language comes from ?lang=
	w := env.do(t, http.MethodPost, "/api/v1/wizard/drafts?lang=fr", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	draft := decodeJSON(t, w)["draft"].(map[string]interface{})
	draftID := draft["id"].(string)
	assert.Equal(t, "basics", draft["step"])
	assert.Equal(t, []interface{}{"fr"}, draft["languages"])

	base := "/api/v1/wizard/drafts/" + draftID

	// cannot advance with an empty name
	w = env.do(t, http.MethodPost, base+"/advance", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// fill basics, advance to industry
	w = env.do(t, http.MethodPatch, base, token, gin.H{"name": "Clinic Bot"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, base+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "industry", decodeJSON(t, w)["draft"].(map[string]interface{})["step"])

	// pick an industry, advance through goals and languages
	w = env.do(t, http.MethodPatch, base, token, gin.H{"industry": "dentist_services"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, base+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPatch, base, token, gin.H{"goal": "Book appointments"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, base+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// add a second language on the languages step
	w = env.do(t, http.MethodPatch, base, token, gin.H{"toggleLanguage": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, base+"/advance", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "review", decodeJSON(t, w)["draft"].(map[string]interface{})["step"])

	// submit from review creates an active bot
	w = env.do(t, http.MethodPost, base+"/submit", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	bot := decodeJSON(t, w)["bot"].(map[string]interface{})
	assert.Equal(t, true, bot["active"])
	assert.Equal(t, "Clinic Bot", bot["name"])
	assert.Equal(t, []interface{}{"fr", "en"}, bot["languages"])

	// the draft is gone
	w = env.do(t, http.MethodGet, base, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// and the bot shows up in the list
	w = env.do(t, http.MethodGet, "/api/v1/bots", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeJSON(t, w)["total"])
}

func TestWizardHandler_SubmitBeforeReviewRejected(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@ouibooking.com", entities.UserRoleUser)

	w := env.do(t, http.MethodPost, "/api/v1/wizard/drafts", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	draftID := decodeJSON(t, w)["draft"].(map[string]interface{})["id"].(string)

	w = env.do(t, http.MethodPost, "/api/v1/wizard/drafts/"+draftID+"/submit", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWizardHandler_RetreatAtBasicsIsNoop(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@ouibooking.com", entities.UserRoleUser)

	w := env.do(t, http.MethodPost, "/api/v1/wizard/drafts", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	draftID := decodeJSON(t, w)["draft"].(map[string]interface{})["id"].(string)

	w = env.do(t, http.MethodPost, "/api/v1/wizard/drafts/"+draftID+"/retreat", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "basics", decodeJSON(t, w)["draft"].(map[string]interface{})["step"])
}

func TestWizardHandler_DraftsScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	_, alice := env.createUser(t, "alice@ouibooking.com", entities.UserRoleUser)
	_, bob := env.createUser(t, "bob@ouibooking.com", entities.UserRoleUser)

	w := env.do(t, http.MethodPost, "/api/v1/wizard/drafts", alice, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	draftID := decodeJSON(t, w)["draft"].(map[string]interface{})["id"].(string)

	w = env.do(t, http.MethodGet, "/api/v1/wizard/drafts/"+draftID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizardHandler_Industries(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@ouibooking.com", entities.UserRoleUser)

	w := env.do(t, http.MethodGet, "/api/v1/wizard/industries", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 80, decodeJSON(t, w)["total"])

	w = env.do(t, http.MethodGet, "/api/v1/wizard/industries?category=education", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeJSON(t, w)["total"])

	w = env.do(t, http.MethodGet, "/api/v1/wizard/industries?search=dental", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	industries := body["industries"].([]interface{})
	require.NotEmpty(t, industries)
	first := industries[0].(map[string]interface{})
	assert.Equal(t, "dentist_services", first["code"])
	assert.Equal(t, "Dental Care", first["name"])

	w = env.do(t, http.MethodGet, "/api/v1/wizard/industries?category=bogus", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWizardHandler_Steps(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@ouibooking.com", entities.UserRoleUser)

	w := env.do(t, http.MethodGet, "/api/v1/wizard/steps", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"basics", "industry", "goals", "languages", "review"},
		decodeJSON(t, w)["steps"])
}
