package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReference builds a gateway-style payment reference:
// PAY-<YYYYMMDD>-<8-char uppercase token>.
func GenerateReference(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PAY-%s-%s", now.Format("20060102"), token)
}
