package service

import (
	"errors"

	"wallet-policy-core/internal/harness"
	"wallet-policy-core/internal/policy"
	"wallet-policy-core/pkg/errno"
	"wallet-policy-core/pkg/monitor"
	"wallet-policy-core/pkg/slip21"
)

type policyService struct {
	metrics *monitor.PolicyMetrics
}

// NewPolicyService metrics 可以为 nil
func NewPolicyService(metrics *monitor.PolicyMetrics) PolicyService {
	return &policyService{metrics: metrics}
}

func (s *policyService) CountInternalKeys(seed []byte, network string, wp policy.WalletPolicy) (uint, error) {
	report, err := s.Inspect(seed, network, wp)
	if err != nil {
		return 0, err
	}
	return report.Total(), nil
}

func (s *policyService) Inspect(seed []byte, network string, wp policy.WalletPolicy) (policy.Report, error) {
	report, err := policy.Inspect(seed, network, wp)
	if err != nil {
		s.metrics.ObserveRequest(requestStatus(err))
		return policy.Report{}, err
	}

	for _, k := range report.Keys {
		s.metrics.ObserveVerdict(string(k.Status))
	}
	s.metrics.ObserveInternal(report.Total())
	s.metrics.ObserveRequest("ok")

	return report, nil
}

func (s *policyService) Globals(mnemonic, network string) (*harness.Globals, error) {
	return harness.NewGlobals(mnemonic, network)
}

func (s *policyService) DeriveSlip21(seed []byte, labels []string) [32]byte {
	path := make([][]byte, 0, len(labels))
	for _, l := range labels {
		path = append(path, []byte(l))
	}

	root := slip21.FromSeed(seed)
	defer root.Zero()
	node := root.DerivePath(path...)
	defer node.Zero()

	return node.Key()
}

func requestStatus(err error) string {
	switch {
	case errors.Is(err, errno.ErrInvalidNetwork):
		return "invalid_network"
	case errors.Is(err, errno.ErrInvalidSeed):
		return "invalid_seed"
	default:
		return "error"
	}
}
