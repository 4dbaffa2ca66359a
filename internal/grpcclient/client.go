package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/faceverify/internal/faceengine"
	"github.com/example/faceverify/internal/logging"
	proto "github.com/example/faceverify/proto"
)

// DialFaceEngine returns a ready-to-use gRPC client for the external
// face detection/embedding service.
func DialFaceEngine(ctx context.Context, addr string, logger *zap.Logger) (faceengine.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_face_engine", "", err)
		logger.Error("failed to dial face engine", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewFaceEngineClient(conn)
	return &grpcFaceEngine{client: client, logger: logger}, conn, nil
}

type grpcFaceEngine struct {
	client proto.FaceEngineClient
	logger *zap.Logger
}

func (g *grpcFaceEngine) DetectFace(ctx context.Context, image []byte) (*faceengine.Detection, error) {
	resp, err := g.client.DetectFace(ctx, &proto.DetectRequest{ImageData: image})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.detect_face", "", err)
		g.logger.Error("face engine detect call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	return &faceengine.Detection{
		FaceFound:  resp.GetFaceFound(),
		Confidence: resp.GetConfidence(),
	}, nil
}

func (g *grpcFaceEngine) CompareFaces(ctx context.Context, reference, probe []byte) (*faceengine.Comparison, error) {
	resp, err := g.client.CompareFaces(ctx, &proto.CompareRequest{ReferenceImage: reference, ProbeImage: probe})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.compare_faces", "", err)
		g.logger.Error("face engine compare call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	return &faceengine.Comparison{
		Distance:  resp.GetDistance(),
		Threshold: resp.GetThreshold(),
		Matched:   resp.GetVerified(),
		Model:     resp.GetModel(),
	}, nil
}
