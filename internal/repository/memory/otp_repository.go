package memory

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	ErrOTPNotFound = errors.New("no otp requested for this email")
	ErrOTPExpired  = errors.New("otp code expired")
	ErrOTPMismatch = errors.New("invalid otp code")
)

type otpRecord struct {
	Code      string
	ExpiresAt time.Time
}

// OTPRepository holds at most one outstanding code per email. Consume is a
// single compare-and-delete under the mutex, so each issued code verifies
// successfully at most once even under concurrent requests.
type OTPRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
	ttl   time.Duration

	now func() time.Time // overridable in tests
}

func NewOTPRepository(ttl time.Duration) *OTPRepository {
	// Records stay in the cache past the verification window so Consume can
	// tell an expired code from a never-issued one. The ExpiresAt check is
	// the authority; the janitor only sweeps records nobody came back for.
	return &OTPRepository{
		cache: cache.New(2*ttl, 10*time.Minute),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Store saves a freshly issued code for email, overwriting any prior record.
// Codes never stack: reissuing invalidates the previous one.
func (r *OTPRepository) Store(email, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Set(email, &otpRecord{
		Code:      code,
		ExpiresAt: r.now().Add(r.ttl),
	}, cache.DefaultExpiration)
}

// Consume validates and deletes the record in one step.
// Terminal transitions (success, expiry) delete the record; a mismatch keeps
// it so the user can retry until the window closes.
func (r *OTPRepository) Consume(email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(email)
	if !found {
		return ErrOTPNotFound
	}
	rec := x.(*otpRecord)

	if r.now().After(rec.ExpiresAt) {
		r.cache.Delete(email)
		return ErrOTPExpired
	}
	if rec.Code != code {
		return ErrOTPMismatch
	}

	r.cache.Delete(email)
	return nil
}
