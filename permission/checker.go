// Package permission finds which AWS operations the fleet backends need but
// the current credentials are not allowed to call. Every probe is either a
// dry run or a read-only call; nothing is changed.
package permission

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/fleet"
	"github.com/sirupsen/logrus"
)

// API names an operation the fleet backends call.
type API string

const (
	DescribeInstances          API = "DescribeInstances"
	CreateTags                 API = "CreateTags"
	DescribeInstanceTypes      API = "DescribeInstanceTypes"
	DescribeFleets             API = "DescribeFleets"
	DescribeFleetInstances     API = "DescribeFleetInstances"
	ModifyFleet                API = "ModifyFleet"
	DescribeSpotFleetRequests  API = "DescribeSpotFleetRequests"
	DescribeSpotFleetInstances API = "DescribeSpotFleetInstances"
	ModifySpotFleetRequest     API = "ModifySpotFleetRequest"
	DescribeAutoScalingGroups  API = "DescribeAutoScalingGroups"
)

const dryRunOperation = "DryRunOperation"

// Stand-in ids for probing a family without a fleet. Dry runs are
// authorized before the id is looked up.
const (
	placeholderEC2FleetID  = "fleet-00000000-0000-0000-0000-000000000000"
	placeholderSpotFleetID = "sfr-00000000-0000-0000-0000-000000000000"
)

// Checker probes permissions for one connection.
type Checker struct {
	Clients awsclient.Factory
	Conn    awsclient.Connection
	Logger  logrus.FieldLogger
}

func NewChecker(clients awsclient.Factory, conn awsclient.Connection) *Checker {
	return &Checker{Clients: clients, Conn: conn}
}

type probe struct {
	api API
	run func(ctx context.Context) error
}

// MissingPermissions returns the operations that were denied, in probe
// order. An empty result means everything is authorized. When fleetID is
// blank the operations of every backend family are probed.
//
// Only authorization failures count as denied. Anything else, such as bad
// credentials, throttling or a transport failure, is returned as an error.
func (c *Checker) MissingPermissions(ctx context.Context, fleetID string) ([]API, error) {
	ec2Client, err := c.Clients.EC2(c.Conn)
	if err != nil {
		return nil, err
	}

	probes := c.commonProbes(ec2Client)
	switch {
	case strings.TrimSpace(fleetID) == "":
		probes = append(probes, c.spotFleetProbes(ec2Client, "")...)
		probes = append(probes, c.ec2FleetProbes(ec2Client, "")...)
		asgProbes, err := c.autoScalingGroupProbes()
		if err != nil {
			return nil, err
		}
		probes = append(probes, asgProbes...)
	case fleet.IsSpotFleet(fleetID):
		probes = append(probes, c.spotFleetProbes(ec2Client, fleetID)...)
	case fleet.IsEC2Fleet(fleetID):
		probes = append(probes, c.ec2FleetProbes(ec2Client, fleetID)...)
	default:
		asgProbes, err := c.autoScalingGroupProbes()
		if err != nil {
			return nil, err
		}
		probes = append(probes, asgProbes...)
	}

	missing := []API{}
	for _, p := range probes {
		authorized, err := classify(p.run(ctx))
		if err != nil {
			return nil, fmt.Errorf("probing %s: %w", p.api, err)
		}
		loggerOrDefault(c.Logger).WithField("api", p.api).Debugf("authorized: %t", authorized)
		if !authorized {
			missing = append(missing, p.api)
		}
	}
	return missing, nil
}

func (c *Checker) commonProbes(client awsclient.EC2API) []probe {
	return []probe{
		{DescribeInstances, func(ctx context.Context) error {
			_, err := client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
				DryRun: aws.Bool(true),
			})
			return err
		}},
		{CreateTags, func(ctx context.Context) error {
			_, err := client.CreateTagsWithContext(ctx, &ec2.CreateTagsInput{
				DryRun:    aws.Bool(true),
				Resources: aws.StringSlice([]string{"i-1234"}),
				Tags:      []*ec2.Tag{{Key: aws.String("instanceId"), Value: aws.String("i-1234")}},
			})
			return err
		}},
		{DescribeInstanceTypes, func(ctx context.Context) error {
			_, err := client.DescribeInstanceTypesWithContext(ctx, &ec2.DescribeInstanceTypesInput{
				DryRun: aws.Bool(true),
			})
			return err
		}},
	}
}

// ec2FleetProbes probes the EC2 Fleet calls. A blank fleetID lists without
// an id filter and uses a placeholder where an id is required.
func (c *Checker) ec2FleetProbes(client awsclient.EC2API, fleetID string) []probe {
	describeInput := &ec2.DescribeFleetsInput{DryRun: aws.Bool(true)}
	if fleetID == "" {
		fleetID = placeholderEC2FleetID
	} else {
		describeInput.FleetIds = aws.StringSlice([]string{fleetID})
	}

	return []probe{
		{DescribeFleets, func(ctx context.Context) error {
			_, err := client.DescribeFleetsWithContext(ctx, describeInput)
			return err
		}},
		{DescribeFleetInstances, func(ctx context.Context) error {
			_, err := client.DescribeFleetInstancesWithContext(ctx, &ec2.DescribeFleetInstancesInput{
				DryRun:  aws.Bool(true),
				FleetId: aws.String(fleetID),
			})
			return err
		}},
		{ModifyFleet, func(ctx context.Context) error {
			_, err := client.ModifyFleetWithContext(ctx, &ec2.ModifyFleetInput{
				DryRun:  aws.Bool(true),
				FleetId: aws.String(fleetID),
			})
			return err
		}},
	}
}

func (c *Checker) spotFleetProbes(client awsclient.EC2API, fleetID string) []probe {
	describeInput := &ec2.DescribeSpotFleetRequestsInput{DryRun: aws.Bool(true)}
	if fleetID == "" {
		fleetID = placeholderSpotFleetID
	} else {
		describeInput.SpotFleetRequestIds = aws.StringSlice([]string{fleetID})
	}

	return []probe{
		{DescribeSpotFleetRequests, func(ctx context.Context) error {
			_, err := client.DescribeSpotFleetRequestsWithContext(ctx, describeInput)
			return err
		}},
		{DescribeSpotFleetInstances, func(ctx context.Context) error {
			_, err := client.DescribeSpotFleetInstancesWithContext(ctx, &ec2.DescribeSpotFleetInstancesInput{
				DryRun:             aws.Bool(true),
				SpotFleetRequestId: aws.String(fleetID),
			})
			return err
		}},
		{ModifySpotFleetRequest, func(ctx context.Context) error {
			_, err := client.ModifySpotFleetRequestWithContext(ctx, &ec2.ModifySpotFleetRequestInput{
				SpotFleetRequestId: aws.String(fleetID),
			}, WithDryRun)
			return err
		}},
	}
}

// autoScalingGroupProbes has no dry run available, so it makes the real
// read-only call.
func (c *Checker) autoScalingGroupProbes() ([]probe, error) {
	client, err := c.Clients.AutoScaling(c.Conn)
	if err != nil {
		return nil, err
	}
	return []probe{
		{DescribeAutoScalingGroups, func(ctx context.Context) error {
			_, err := client.DescribeAutoScalingGroupsWithContext(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
				MaxRecords: aws.Int64(1),
			})
			return err
		}},
	}, nil
}

// WithDryRun adds DryRun=true to the encoded query of requests whose input
// type has no DryRun field.
func WithDryRun(r *request.Request) {
	r.Handlers.Build.PushBack(func(r *request.Request) {
		if r.Error != nil || r.Body == nil {
			return
		}
		b, err := ioutil.ReadAll(r.Body)
		if err != nil {
			r.Error = err
			return
		}
		r.SetStringBody(string(b) + "&DryRun=true")
	})
}

// classify turns a probe result into an authorization verdict. Only a
// successful call, a passed dry run or an authorization failure give a
// verdict; every other error is returned.
func classify(err error) (bool, error) {
	if err == nil {
		return true, nil
	}

	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false, err
	}

	switch code := aerr.Code(); {
	case code == dryRunOperation:
		return true, nil
	case code == "UnauthorizedOperation", strings.HasPrefix(code, "AccessDenied"):
		return false, nil
	}

	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusForbidden {
		return false, nil
	}
	return false, err
}

func loggerOrDefault(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
