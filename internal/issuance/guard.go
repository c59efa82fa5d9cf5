package issuance

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// BeforeTransfer is the pre-transfer guard, invoked by the token backend
// immediately before it applies a transfer of the managed denom. It is
// read-only: nil means allow, otherwise the sentinel names the rejection
// reason. A global freeze blocks every transfer; a restricted sender is
// rejected while unfrozen. Whether the recipient is also checked is the
// backend's business.
func (i *Issuer) BeforeTransfer(from, to ethcommon.Address, amounts []Coin) error {
	cfg, err := i.config.get()
	if err != nil {
		return err
	}
	if cfg.IsFrozen {
		guardVerdictCounter.WithLabelValues("frozen").Inc()
		return ErrFrozen
	}

	restricted, err := i.blacklist.status(from)
	if err != nil {
		return err
	}
	if restricted {
		guardVerdictCounter.WithLabelValues("blacklisted").Inc()
		i.logger.WithFields(logrus.Fields{
			"from": from.String(),
			"to":   to.String(),
		}).Debug("transfer rejected, sender blacklisted")
		return ErrBlacklisted
	}

	guardVerdictCounter.WithLabelValues("allow").Inc()
	return nil
}
