package mock

import (
	"github.com/ryotarai/ec2fleet/awsclient"
)

// Factory hands out fixed clients and records the connections asked for.
type Factory struct {
	EC2Client         awsclient.EC2API
	AutoScalingClient awsclient.AutoScalingAPI
	Err               error

	Connections []awsclient.Connection
}

func (f *Factory) EC2(conn awsclient.Connection) (awsclient.EC2API, error) {
	f.Connections = append(f.Connections, conn)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.EC2Client, nil
}

func (f *Factory) AutoScaling(conn awsclient.Connection) (awsclient.AutoScalingAPI, error) {
	f.Connections = append(f.Connections, conn)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.AutoScalingClient, nil
}
