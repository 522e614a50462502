package factory

import (
	"fmt"
	"time"

	"github.com/mcoot/imposter/internal/dependencies/mocks"
	"github.com/mcoot/imposter/internal/model"
	"github.com/mcoot/imposter/internal/services/round"
	"github.com/mcoot/imposter/internal/storage/memory"
	"github.com/mcoot/imposter/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Round IDs are "round-1", "round-2", ... in start order.
func NewTestApp(opts ...round.Option) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	ids := 0
	opts = append([]round.Option{round.WithIDGenerator(func() string {
		ids++
		return fmt.Sprintf("round-%d", ids)
	})}, opts...)

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger(), opts...)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWordBank loads a small word bank for testing
func (t *TestApp) LoadTestWordBank() error {
	return t.WordBankService.LoadBank(&model.WordBank{Categories: []model.Category{
		{ID: "food", Label: "Food", Words: []string{"Pizza", "Sushi", "Taco"}},
		{ID: "places", Label: "Places", Words: []string{"Airport", "Library"}},
	}})
}
