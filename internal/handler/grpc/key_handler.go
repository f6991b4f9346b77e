package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"hdkey-core/internal/service"
	"hdkey-core/pkg/errno"
	"hdkey-core/pkg/handle"
	"hdkey-core/pkg/logger"
)

// KeyHandler implements KeyFactoryServer
type KeyHandler struct {
	service service.KeyService
}

// NewKeyHandler creates a new gRPC handler
func NewKeyHandler(svc service.KeyService) *KeyHandler {
	return &KeyHandler{service: svc}
}

// NewPrivateKey creates a default handle for empty bytes, a master key otherwise
func (h *KeyHandler) NewPrivateKey(ctx context.Context, req *wrapperspb.BytesValue) (*structpb.Struct, error) {
	var (
		info *service.KeyInfo
		err  error
	)
	if len(req.GetValue()) == 0 {
		info, err = h.service.NewPrivateKey(ctx)
	} else {
		info, err = h.service.NewPrivateKeyFromSeed(ctx, req.GetValue())
	}
	if err != nil {
		logger.Warn("[gRPC] NewPrivateKey failed", zap.Error(err))
		return nil, toStatus(err)
	}

	return structpb.NewStruct(map[string]interface{}{
		"handle":      info.Handle,
		"id":          float64(info.ID), // Struct numbers are doubles, use "handle" for exact value
		"source":      info.Source,
		"valid":       info.Valid,
		"network":     info.Network,
		"xpub":        info.XPub,
		"fingerprint": info.Fingerprint,
		"btc_address": info.BTCAddress,
		"eth_address": info.ETHAddress,
	})
}

// ReleaseKey destroys a handle
func (h *KeyHandler) ReleaseKey(ctx context.Context, req *wrapperspb.UInt64Value) (*emptypb.Empty, error) {
	if err := h.service.Release(ctx, handle.ID(req.GetValue())); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// toStatus maps service errors to gRPC codes, keeping the message verbatim
func toStatus(err error) error {
	_, msg := errno.Decode(err)
	switch {
	case errors.Is(err, errno.ErrKeyConstruction), errors.Is(err, errno.ErrInvalidMnemonic):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, errno.ErrHandleNotFound):
		return status.Error(codes.NotFound, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}
