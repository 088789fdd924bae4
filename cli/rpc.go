package cli

import (
	"net"
	"strconv"

	apiv1 "sv2/rpc/v1"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

func DialRPC(cmd *cobra.Command) (*grpc.ClientConn, error) {
	rpcHost, _ := cmd.Flags().GetString(FlagRPCHost)
	rpcPort, _ := cmd.Flags().GetInt(FlagRPCPort)
	return grpc.Dial(
		net.JoinHostPort(rpcHost, strconv.Itoa(rpcPort)),
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(apiv1.CodecName)),
	)
}

// DialClient dials the daemon and returns a client along with a func that
// closes the underlying connection.
func DialClient(cmd *cobra.Command) (apiv1.SV2v1Client, func(), error) {
	conn, err := DialRPC(cmd)
	if err != nil {
		return nil, nil, err
	}
	return apiv1.NewSV2v1Client(conn), func() {
		conn.Close()
	}, nil
}
