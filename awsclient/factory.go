package awsclient

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// Connection identifies where and as whom API calls are made.
type Connection struct {
	// CredentialsID names a profile in the shared credentials file. Empty
	// means the default credential chain.
	CredentialsID string
	Region        string
	// Endpoint overrides the service endpoint when non-empty.
	Endpoint string
}

func (c Connection) String() string {
	s := c.Region
	if c.CredentialsID != "" {
		s = c.CredentialsID + "@" + s
	}
	if c.Endpoint != "" {
		s += " (" + c.Endpoint + ")"
	}
	return s
}

// Factory produces authenticated API clients for a connection.
type Factory interface {
	EC2(conn Connection) (EC2API, error)
	AutoScaling(conn Connection) (AutoScalingAPI, error)
}

// SessionFactory builds a fresh aws-sdk session for every client it hands
// out. Retries are disabled: a failed call is reported to the caller, who
// decides whether to try again on the next poll.
type SessionFactory struct{}

func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

func (f *SessionFactory) EC2(conn Connection) (EC2API, error) {
	sess, err := session.NewSession(NewConfig(conn))
	if err != nil {
		return nil, err
	}
	return ec2.New(sess), nil
}

func (f *SessionFactory) AutoScaling(conn Connection) (AutoScalingAPI, error) {
	sess, err := session.NewSession(NewConfig(conn))
	if err != nil {
		return nil, err
	}
	return autoscaling.New(sess), nil
}

// NewConfig translates a connection into an aws.Config.
func NewConfig(conn Connection) *aws.Config {
	cfg := aws.NewConfig().WithMaxRetries(0)
	if conn.Region != "" {
		cfg = cfg.WithRegion(conn.Region)
	}
	if conn.Endpoint != "" {
		cfg = cfg.WithEndpoint(conn.Endpoint)
	}
	if conn.CredentialsID != "" {
		cfg = cfg.WithCredentials(credentials.NewSharedCredentials("", conn.CredentialsID))
	}
	return cfg
}
