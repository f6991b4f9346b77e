package handler

import (
	"encoding/hex"
	"errors"
	"io"

	"hdkey-core/internal/handler/request"
	"hdkey-core/internal/handler/response"
	"hdkey-core/internal/service"
	"hdkey-core/pkg/errno"
	"hdkey-core/pkg/handle"
	"hdkey-core/pkg/validator"

	"github.com/gin-gonic/gin"
)

type KeyHandler struct {
	svc service.KeyService
}

func NewKeyHandler(svc service.KeyService) *KeyHandler {
	return &KeyHandler{svc: svc}
}

// CreateKey 创建私钥句柄
// @Summary 创建 HD 私钥句柄
// @Description 空请求体创建默认句柄; seed_hex 或 mnemonic 创建主私钥。返回公开信息，不返回 xprv。
// @Tags Key
// @Accept json
// @Produce json
// @Param request body request.CreateKeyRequest false "Create Key Request"
// @Success 200 {object} response.Response
// @Router /api/v1/keys [post]
func (h *KeyHandler) CreateKey(c *gin.Context) {
	var req request.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, errno.ErrValidation.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	ctx := c.Request.Context()
	var (
		info *service.KeyInfo
		err  error
	)
	switch {
	case req.SeedHex != nil:
		seed, decodeErr := hex.DecodeString(*req.SeedHex)
		if decodeErr != nil {
			response.Error(c, errno.ErrInvalidSeedHex)
			return
		}
		info, err = h.svc.NewPrivateKeyFromSeed(ctx, seed)
	case req.Mnemonic != "":
		info, err = h.svc.NewPrivateKeyFromMnemonic(ctx, req.Mnemonic, req.Passphrase)
	default:
		info, err = h.svc.NewPrivateKey(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// GetKey 查询句柄
// @Summary 查询句柄公开信息
// @Tags Key
// @Produce json
// @Param id path string true "Handle"
// @Success 200 {object} response.Response
// @Router /api/v1/keys/{id} [get]
func (h *KeyHandler) GetKey(c *gin.Context) {
	id, err := handle.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, errno.ErrHandleNotFound)
		return
	}
	info, err := h.svc.Describe(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

// ReleaseKey 销毁句柄
// @Summary 释放句柄并擦除密钥材料
// @Tags Key
// @Produce json
// @Param id path string true "Handle"
// @Success 200 {object} response.Response
// @Router /api/v1/keys/{id} [delete]
func (h *KeyHandler) ReleaseKey(c *gin.Context) {
	id, err := handle.ParseID(c.Param("id"))
	if err != nil {
		response.Error(c, errno.ErrHandleNotFound)
		return
	}
	if err := h.svc.Release(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"handle": id.String(), "released": true})
}

// NewSeed 生成随机种子
// @Summary 生成随机种子
// @Tags Key
// @Accept json
// @Produce json
// @Param request body request.NewSeedRequest false "Seed Request"
// @Success 200 {object} response.Response
// @Router /api/v1/seeds [post]
func (h *KeyHandler) NewSeed(c *gin.Context) {
	var req request.NewSeedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, errno.ErrValidation.WithMessage(validator.GetErrorMsg(err)))
		return
	}

	seed, err := h.svc.NewSeed(req.Bits)
	if err != nil {
		response.Error(c, errno.ErrValidation.WithMessage(err.Error()))
		return
	}
	response.Success(c, gin.H{"seed_hex": hex.EncodeToString(seed), "bits": len(seed) * 8})
}
