package controllers

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/median-man/team-tracker/config"
	"github.com/median-man/team-tracker/models"
	"github.com/median-man/team-tracker/utils"
	"github.com/stretchr/testify/require"
)

var signingKey *rsa.PrivateKey

func TestMain(m *testing.M) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	signingKey = key
	utils.InitSharedConstants(key.PublicKey)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		JwtParsedPrivateKey: signingKey,
		JwtParsedPublicKey:  &signingKey.PublicKey,
		SessionTTL:          3600,
	}
}

func accessToken(t *testing.T, userId int64) string {
	t.Helper()
	token, err := utils.CreateJwt(utils.JwtConfig{
		User:       strconv.FormatInt(userId, 10),
		ExpireIn:   time.Hour,
		Scope:      "basic",
		Subject:    "access",
		Data:       map[string]string{},
		PrivateKey: signingKey,
	})
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func hasSessionCookie(cookies []*http.Cookie) bool {
	for _, c := range cookies {
		if c.Name == utils.SessionCookie && c.Value != "" {
			return true
		}
	}
	return false
}

// ---- fakes ----

type fakeSessions struct {
	seq       int
	live      map[string]int64
	destroyed []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{live: map[string]int64{}}
}

func (f *fakeSessions) Create(ctx context.Context, userId int64) (string, error) {
	f.seq++
	id := fmt.Sprintf("sess-%d", f.seq)
	f.live[id] = userId
	return id, nil
}

func (f *fakeSessions) Get(ctx context.Context, id string) (int64, error) {
	userId, ok := f.live[id]
	if !ok {
		return 0, models.ErrNotFound
	}
	return userId, nil
}

func (f *fakeSessions) Destroy(ctx context.Context, id string) error {
	delete(f.live, id)
	f.destroyed = append(f.destroyed, id)
	return nil
}

type fakeUsers struct {
	byEmail       map[string]*models.User
	added         []*models.User
	addErr        error
	touched       []int64
	profile       *models.User
	profileTeamId int64
}

func (f *fakeUsers) AddUser(ctx context.Context, user *models.User) error {
	if f.addErr != nil {
		return f.addErr
	}
	user.Id = int64(len(f.added) + 1)
	user.LastLogin = time.Now()
	f.added = append(f.added, user)
	if f.byEmail == nil {
		f.byEmail = map[string]*models.User{}
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) TouchLastLogin(ctx context.Context, id int64) error {
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeUsers) UserProfile(ctx context.Context, id, teamId int64) (*models.User, error) {
	f.profileTeamId = teamId
	if f.profile == nil || f.profile.Id != id {
		return nil, models.ErrNotFound
	}
	return f.profile, nil
}

type fakeTeams struct {
	addErr      error
	added       []*models.Team
	updateCalls int
	updatePatch models.TeamPatch
	updateTeam  *models.Team
	updateErr   error
	deleteErr   error
}

func (f *fakeTeams) AddTeamTx(ctx context.Context, team *models.Team, memberNames []string) error {
	if f.addErr != nil {
		return f.addErr
	}
	team.Id = int64(len(f.added) + 1)
	for i, name := range memberNames {
		team.Members = append(team.Members, &models.Member{
			Id:     int64(i + 1),
			Name:   name,
			TeamId: team.Id,
		})
	}
	f.added = append(f.added, team)
	return nil
}

func (f *fakeTeams) UpdateTeam(ctx context.Context, teamId, userId int64, patch models.TeamPatch) (*models.Team, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatePatch = patch
	return f.updateTeam, nil
}

func (f *fakeTeams) DeleteTeam(ctx context.Context, teamId, userId int64) error {
	return f.deleteErr
}

type fakeMembers struct {
	team      *models.Team
	removeErr error
}

func (f *fakeMembers) AddMember(ctx context.Context, teamId, userId int64, name string) (*models.Team, error) {
	if f.team == nil || f.team.Id != teamId || f.team.UserId != userId {
		return nil, models.ErrNotFound
	}
	if f.team.HasMember(name) {
		return f.team, nil
	}
	if len(f.team.Members) >= models.MaxMembers {
		return nil, models.ErrMemberLimit
	}
	f.team.Members = append(f.team.Members, &models.Member{
		Id:     int64(len(f.team.Members) + 1),
		Name:   name,
		TeamId: teamId,
	})
	return f.team, nil
}

func (f *fakeMembers) RemoveMember(ctx context.Context, memberId, userId int64) error {
	return f.removeErr
}

type fakeNotes struct {
	addErr    error
	added     []*models.Note
	updated   *models.Note
	updateErr error
	deleteErr error
}

func (f *fakeNotes) AddNote(ctx context.Context, note *models.Note) error {
	if f.addErr != nil {
		return f.addErr
	}
	note.Id = int64(len(f.added) + 1)
	f.added = append(f.added, note)
	return nil
}

func (f *fakeNotes) UpdateNote(ctx context.Context, noteId, userId int64, body string) (*models.Note, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeNotes) DeleteNote(ctx context.Context, noteId, userId int64) error {
	return f.deleteErr
}
