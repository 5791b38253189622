package fleet

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

// SpotFleet is the backend for Spot Fleet requests (ids prefixed with
// "sfr-"). Instance type weights are not reported.
type SpotFleet struct {
	Clients awsclient.Factory
	Logger  logrus.FieldLogger
}

func NewSpotFleet(clients awsclient.Factory) *SpotFleet {
	return &SpotFleet{Clients: clients}
}

func (f *SpotFleet) Label() string {
	return "Spot Fleet"
}

func (f *SpotFleet) Describe(ctx context.Context, conn awsclient.Connection, sel Selector, selectedID string, showAll bool) error {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return err
	}

	options := Options{}
	var token *string
	for {
		loggerOrDefault(f.Logger).Debugf("DescribeSpotFleetRequests on %s", conn)
		out, err := client.DescribeSpotFleetRequestsWithContext(ctx, &ec2.DescribeSpotFleetRequestsInput{NextToken: token})
		if err != nil {
			return err
		}

		for _, c := range out.SpotFleetRequestConfigs {
			id := aws.StringValue(c.SpotFleetRequestId)
			selected := id == selectedID
			if selected || showAll || isActiveAndMaintainSpotFleet(c) {
				label := fmt.Sprintf("%s - %s (%s) (%s)", f.Label(), id, aws.StringValue(c.SpotFleetRequestState), spotFleetType(c))
				options.Add(label, id, selected)
			}
		}

		if aws.StringValue(out.NextToken) == "" {
			break
		}
		token = out.NextToken
	}

	options.addTo(sel)
	return nil
}

func (f *SpotFleet) Modify(ctx context.Context, conn awsclient.Connection, id string, targetCapacity, min, max int) error {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return err
	}

	input := &ec2.ModifySpotFleetRequestInput{
		SpotFleetRequestId:              aws.String(id),
		TargetCapacity:                  aws.Int64(int64(targetCapacity)),
		ExcessCapacityTerminationPolicy: aws.String(ec2.ExcessCapacityTerminationPolicyNoTermination),
	}
	loggerOrDefault(f.Logger).WithField("fleet", id).Infof("Modifying target capacity to %d", targetCapacity)
	_, err = client.ModifySpotFleetRequestWithContext(ctx, input)
	return err
}

func (f *SpotFleet) GetState(ctx context.Context, conn awsclient.Connection, id string) (*FleetStateStats, error) {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return nil, err
	}

	loggerOrDefault(f.Logger).WithField("fleet", id).Debug("DescribeSpotFleetRequests")
	out, err := client.DescribeSpotFleetRequestsWithContext(ctx, &ec2.DescribeSpotFleetRequestsInput{
		SpotFleetRequestIds: aws.StringSlice([]string{id}),
	})
	if err != nil {
		return nil, err
	}
	if len(out.SpotFleetRequestConfigs) == 0 {
		return nil, notFound(id)
	}

	instances, err := f.activeInstances(ctx, client, id)
	if err != nil {
		return nil, err
	}

	return newSpotFleetStats(id, out.SpotFleetRequestConfigs[0], instances), nil
}

func (f *SpotFleet) GetStateBatch(ctx context.Context, conn awsclient.Connection, ids []string) (map[string]*FleetStateStats, error) {
	stats := map[string]*FleetStateStats{}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return stats, nil
	}

	client, err := f.Clients.EC2(conn)
	if err != nil {
		return nil, err
	}

	instancesByID := make(map[string][]string, len(ids))
	for _, id := range ids {
		instances, err := f.activeInstances(ctx, client, id)
		if err != nil {
			return nil, err
		}
		instancesByID[id] = instances
	}

	var token *string
	for {
		loggerOrDefault(f.Logger).Debugf("DescribeSpotFleetRequests for %d fleets", len(ids))
		out, err := client.DescribeSpotFleetRequestsWithContext(ctx, &ec2.DescribeSpotFleetRequestsInput{
			SpotFleetRequestIds: aws.StringSlice(ids),
			NextToken:           token,
		})
		if err != nil {
			return nil, err
		}

		for _, c := range out.SpotFleetRequestConfigs {
			id := aws.StringValue(c.SpotFleetRequestId)
			instances, ok := instancesByID[id]
			if !ok {
				continue
			}
			stats[id] = newSpotFleetStats(id, c, instances)
		}

		if aws.StringValue(out.NextToken) == "" {
			break
		}
		token = out.NextToken
	}

	return stats, nil
}

func (f *SpotFleet) activeInstances(ctx context.Context, client awsclient.EC2API, id string) ([]string, error) {
	instances := []string{}
	var token *string
	for {
		loggerOrDefault(f.Logger).WithField("fleet", id).Debug("DescribeSpotFleetInstances")
		out, err := client.DescribeSpotFleetInstancesWithContext(ctx, &ec2.DescribeSpotFleetInstancesInput{
			SpotFleetRequestId: aws.String(id),
			NextToken:          token,
		})
		if err != nil {
			return nil, err
		}

		for _, i := range out.ActiveInstances {
			instances = append(instances, aws.StringValue(i.InstanceId))
		}

		if aws.StringValue(out.NextToken) == "" {
			break
		}
		token = out.NextToken
	}
	return instances, nil
}

func newSpotFleetStats(id string, c *ec2.SpotFleetRequestConfig, instances []string) *FleetStateStats {
	var desired int64
	if c.SpotFleetRequestConfig != nil {
		desired = aws.Int64Value(c.SpotFleetRequestConfig.TargetCapacity)
	}
	return NewFleetStateStats(id, int(desired), spotFleetState(aws.StringValue(c.SpotFleetRequestState)), instances, nil)
}

func spotFleetState(s string) State {
	return State{
		Active:    s == ec2.BatchStateActive || s == ec2.BatchStateModifying || s == ec2.BatchStateSubmitted,
		Modifying: s == ec2.BatchStateSubmitted || s == ec2.BatchStateModifying,
		Detailed:  s,
	}
}

func spotFleetType(c *ec2.SpotFleetRequestConfig) string {
	if c.SpotFleetRequestConfig == nil {
		return ""
	}
	return aws.StringValue(c.SpotFleetRequestConfig.Type)
}

func isActiveAndMaintainSpotFleet(c *ec2.SpotFleetRequestConfig) bool {
	return spotFleetType(c) == ec2.FleetTypeMaintain && spotFleetState(aws.StringValue(c.SpotFleetRequestState)).Active
}
