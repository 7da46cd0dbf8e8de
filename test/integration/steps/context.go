// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/planner/config"
	"github.com/finance-tracker/planner/internal/infra/dependency"
	"github.com/finance-tracker/planner/internal/integration/adapters"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
	"github.com/finance-tracker/planner/test/integration/mock"
)

const (
	testJWTSecret    = "test-jwt-secret-key-for-testing-purposes"
	testRateLimit    = 3
	testCacheTTL     = time.Hour
	resendEmailsPath = "/emails"
)

// environment is the server and its fakes, shared by every scenario.
type environment struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	redis    *mock.Redis
	clock    *mock.Time
	ai       *mock.AIService
	resend   *mock.ApiMock
	tokens   *adapters.TokenService
}

var (
	envOnce sync.Once
	env     *environment
	envErr  error
)

func startEnvironment() (*environment, error) {
	envOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		e := &environment{
			db: mock.NewDb(map[string]any{
				"transactions":  &model.TransactionModel{},
				"goals":         &model.GoalModel{},
				"budgets":       &model.BudgetModel{},
				"debts":         &model.DebtModel{},
				"subscriptions": &model.SubscriptionModel{},
			}),
			redis:  mock.NewRedis(),
			clock:  mock.NewTime(),
			ai:     mock.NewAIService(),
			resend: mock.NewApiServer(),
			tokens: adapters.NewTokenService(testJWTSecret),
		}
		e.resend.Start()

		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.Insights.CacheTTL = testCacheTTL
		cfg.Insights.RateLimit = testRateLimit
		cfg.Insights.RateLimitWindow = time.Minute
		cfg.Insights.RequirePremium = true
		cfg.Insights.LookbackDays = 90
		cfg.Email.ResendAPIKey = "re_test_key"
		cfg.Email.ResendBaseURL = e.resend.GetUrl()
		cfg.Email.AppBaseURL = "https://app.example.com"
		cfg.Server.AllowedOrigins = []string{"https://app.example.com"}
		cfg.Budgets.DefaultsFile = ""

		injector, err := dependency.NewInjector(cfg, e.db.DbConn, e.redis.Client,
			dependency.WithAIService(e.ai),
			dependency.WithClock(e.clock),
			dependency.WithDBHealthChecker(func() bool { return e.db.DbConn != nil }),
		)
		if err != nil {
			envErr = fmt.Errorf("failed to wire test server: %w", err)
			return
		}
		e.injector = injector
		e.server = httptest.NewServer(injector.Router.Setup("test"))
		env = e
	})
	return env, envErr
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		if _, err := startEnvironment(); err != nil {
			panic(err)
		}
	})

	ctx.AfterSuite(func() {
		if env != nil {
			env.server.Close()
			env.resend.Close()
		}
	})
}

// testContext holds the state of one scenario.
type testContext struct {
	env           *environment
	client        *http.Client
	headers       map[string]string
	response      *response
	accessToken   string
	currentUserID uuid.UUID
	currentEmail  string
	lastID        string
}

type response struct {
	status int
	body   any
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^my access token has expired$`, test.myAccessTokenHasExpired)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^I have the following transactions:$`, test.iHaveTheFollowingTransactions)
	ctx.Given(`^I have a premium subscription until "([^"]*)" with grace period until "([^"]*)"$`, test.iHaveAPremiumSubscription)
	ctx.Given(`^the AI service replies with:$`, test.theAIServiceRepliesWith)
	ctx.Given(`^the AI service is not configured$`, test.theAIServiceIsNotConfigured)
	ctx.Given(`^the AI service fails with "([^"]*)"$`, test.theAIServiceFailsWith)
	ctx.Given(`^the email provider responds with status (\d+) and body:$`, test.theEmailProviderRespondsWith)
	ctx.Given(`^the cached insights have expired$`, test.theCachedInsightsHaveExpired)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps, usable as Given for setup through the API
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Collaborator assertion steps
	ctx.Then(`^the AI service should have been called (\d+) times?$`, test.theAIServiceShouldHaveBeenCalled)
	ctx.Then(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Then(`^the last email field "([^"]*)" should contain "([^"]*)"$`, test.theLastEmailFieldShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	e, err := startEnvironment()
	if err != nil {
		return err
	}
	t.env = e
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentEmail = ""
	t.lastID = ""

	e.clock.Reset()
	e.ai.Reset()
	e.redis.Clear()
	e.resend.ClearResponses()
	e.resend.SetResponse(-1, "POST", resendEmailsPath, http.StatusOK, map[string]any{"id": "re_mock_id"})
	e.injector.InsightRateLimiter.Reset()

	return e.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.env.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("test server is not running: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}
