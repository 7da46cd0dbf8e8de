package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

const dateLayout = "2006-01-02"

func (t *testContext) iAmAuthenticatedAs(email string) error {
	t.currentUserID = uuid.New()
	t.currentEmail = email

	token, err := t.env.tokens.IssueAccessToken(t.currentUserID, email, time.Hour)
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) myAccessTokenHasExpired() error {
	token, err := t.env.tokens.IssueAccessToken(t.currentUserID, t.currentEmail, -time.Minute)
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	// Noon, so that the calendar day survives any UTC truncation.
	t.env.clock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

// iHaveTheFollowingTransactions seeds transactions from a table with the
// columns date, description, amount, type, category and optionally is_fixed.
func (t *testContext) iHaveTheFollowingTransactions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header and at least one row")
	}

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		for _, c := range row.Cells {
			rows[i] = append(rows[i], strings.TrimSpace(c.Value))
		}
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[name] = i
	}
	cell := func(row []string, name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range rows[1:] {
		date, err := time.Parse(dateLayout, cell(row, "date"))
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		amount, err := decimal.NewFromString(cell(row, "amount"))
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		isFixed, _ := strconv.ParseBool(cell(row, "is_fixed"))

		tx := entity.NewTransaction(
			t.currentUserID,
			date,
			cell(row, "description"),
			amount,
			entity.TransactionType(cell(row, "type")),
			cell(row, "category"),
			isFixed,
		)
		if err := t.env.db.DbConn.Create(model.TransactionFromEntity(tx)).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) iHaveAPremiumSubscription(premiumUntil, graceEnd string) error {
	until, err := time.Parse(dateLayout, premiumUntil)
	if err != nil {
		return err
	}
	grace, err := time.Parse(dateLayout, graceEnd)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return t.env.db.DbConn.Create(&model.SubscriptionModel{
		ID:             uuid.New(),
		UserID:         t.currentUserID,
		Plan:           "monthly",
		PremiumUntil:   until,
		GracePeriodEnd: grace,
		CreatedAt:      now,
		UpdatedAt:      now,
	}).Error
}

func (t *testContext) theAIServiceRepliesWith(body *godog.DocString) error {
	var reply entity.AIInsight
	if err := json.Unmarshal([]byte(body.Content), &reply); err != nil {
		return fmt.Errorf("invalid AI reply: %w", err)
	}
	t.env.ai.SetReply(&reply)
	return nil
}

func (t *testContext) theAIServiceIsNotConfigured() error {
	t.env.ai.SetAvailable(false)
	return nil
}

func (t *testContext) theAIServiceFailsWith(message string) error {
	t.env.ai.SetError(errors.New(message))
	return nil
}

func (t *testContext) theEmailProviderRespondsWith(status int, body *godog.DocString) error {
	var payload map[string]any
	if err := json.Unmarshal([]byte(body.Content), &payload); err != nil {
		return err
	}
	t.env.resend.SetResponse(-1, "POST", resendEmailsPath, status, payload)
	return nil
}

func (t *testContext) theCachedInsightsHaveExpired() error {
	t.env.redis.FastForward(testCacheTTL + time.Second)
	return nil
}

func (t *testContext) theAIServiceShouldHaveBeenCalled(times int) error {
	if calls := len(t.env.ai.Calls()); calls != times {
		return fmt.Errorf("expected %d AI calls, got %d", times, calls)
	}
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	if received := t.env.resend.RequestCount("POST", resendEmailsPath); received != count {
		return fmt.Errorf("expected %d emails, got %d", count, received)
	}
	return nil
}

func (t *testContext) theLastEmailFieldShouldContain(field, expected string) error {
	count := t.env.resend.RequestCount("POST", resendEmailsPath)
	if count == 0 {
		return errors.New("no email was sent")
	}

	request := t.env.resend.GetRequestBody("POST", resendEmailsPath, count-1)
	value := getFieldValue(request, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in email: %v", field, request)
	}

	actual := fmt.Sprintf("%v", value)
	if !strings.Contains(actual, t.replacePlaceholders(expected)) {
		return fmt.Errorf("email field '%s' does not contain '%s': %s", field, expected, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

// countRows counts live rows of table matching criteria.
func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	tableModel, ok := t.env.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(tableModel).Elem()))

	query := t.env.db.DbConn.Model(tableModel)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
