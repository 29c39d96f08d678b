package inputfilter

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

// TestForm_ConcurrentValidateLeaveNoGoroutines hammers Validate from many
// goroutines against one shared, already-built Form and confirms none of
// them leak, per §5's "safe to share after build" guarantee.
func TestForm_ConcurrentValidateLeaveNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	form := NewForm(
		[]*StringField{stringField("password"), stringField("password_confirm")},
		NewFieldsEqual("password", "password_confirm", "passwords must match"),
	)

	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(n int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				values := map[string]string{"password": "secret", "password_confirm": "secret"}
				if (n+j)%2 == 0 {
					values["password_confirm"] = "different"
				}
				_ = form.Validate(values)
			}
		}(i)
	}
	wg.Wait()
}
