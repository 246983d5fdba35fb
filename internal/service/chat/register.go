package chat

import (
	"google.golang.org/grpc"

	"github.com/oggyb/roommatch/internal/app"
	pb "github.com/oggyb/roommatch/internal/proto/chat"
)

// Registrar ties the Chat service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s grpc.ServiceRegistrar) {
	pb.RegisterChatServiceServer(s, NewChatService(r.appCtx))
}
