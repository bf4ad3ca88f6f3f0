package handler

import (
	"encoding/hex"

	"wallet-policy-core/internal/handler/request"
	"wallet-policy-core/internal/handler/response"
	"wallet-policy-core/internal/harness"
	"wallet-policy-core/internal/policy"
	"wallet-policy-core/internal/service"
	"wallet-policy-core/pkg/errno"
	"wallet-policy-core/pkg/validator"

	"github.com/gin-gonic/gin"
)

// PolicyHandler 钱包策略相关接口
type PolicyHandler struct {
	svc service.PolicyService
}

func NewPolicyHandler(svc service.PolicyService) *PolicyHandler {
	return &PolicyHandler{svc: svc}
}

// Count 统计策略中属于种子的占位符个数
// POST /api/v1/policy/count
func (h *PolicyHandler) Count(c *gin.Context) {
	req, seed, ok := bindCount(c)
	if !ok {
		return
	}

	count, err := h.svc.CountInternalKeys(seed, req.Network, toPolicy(req.Policy))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"internal_keys": count})
}

// Inspect 返回策略中每个密钥的判定结果
// POST /api/v1/policy/inspect
func (h *PolicyHandler) Inspect(c *gin.Context) {
	req, seed, ok := bindCount(c)
	if !ok {
		return
	}

	report, err := h.svc.Inspect(seed, req.Network, toPolicy(req.Policy))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"fingerprint":   hex.EncodeToString(report.Fingerprint[:]),
		"internal_keys": report.Total(),
		"keys":          report.Keys,
	})
}

// Globals 返回助记词对应的测试常量
// POST /api/v1/globals
func (h *PolicyHandler) Globals(c *gin.Context) {
	var req request.GlobalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}
	if req.Mnemonic == "" {
		req.Mnemonic = harness.DefaultMnemonic
	}

	g, err := h.svc.Globals(req.Mnemonic, req.Network)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"network":                  g.Network,
		"mnemonic":                 g.Mnemonic,
		"seed":                     hex.EncodeToString(g.Seed),
		"master_extended_privkey":  g.MasterExtendedPrivkey,
		"master_extended_pubkey":   g.MasterExtendedPubkey,
		"master_key_fingerprint":   g.FingerprintHex(),
		"master_compressed_pubkey": g.MasterCompressedPubkey,
		"wallet_registration_key":  hex.EncodeToString(g.WalletRegistrationKey[:]),
	})
}

// Slip21 按标签路径派生 SLIP-21 密钥
// POST /api/v1/slip21
func (h *PolicyHandler) Slip21(c *gin.Context) {
	var req request.Slip21Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	seed, err := hex.DecodeString(req.Seed)
	if err != nil {
		response.Error(c, errno.ErrInvalidSeed.Wrap(err.Error()))
		return
	}

	key := h.svc.DeriveSlip21(seed, req.Labels)
	response.Success(c, gin.H{"key": hex.EncodeToString(key[:])})
}

func bindCount(c *gin.Context) (request.CountRequest, []byte, bool) {
	var req request.CountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errno.ErrBind.WithMessage(validator.GetErrorMsg(err)))
		return req, nil, false
	}

	// hexadecimal 规则允许奇数长度，这里再解码一次
	seed, err := hex.DecodeString(req.Seed)
	if err != nil {
		response.Error(c, errno.ErrInvalidSeed.Wrap(err.Error()))
		return req, nil, false
	}
	return req, seed, true
}

func toPolicy(p request.WalletPolicy) policy.WalletPolicy {
	return policy.NewWalletPolicy(p.Name, p.PolicyMap, p.KeysInfo)
}
