package fleet

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

// EC2Fleet is the backend for EC2 Fleets (ids prefixed with "fleet-"). It is
// the only backend that reports instance type weights.
type EC2Fleet struct {
	Clients awsclient.Factory
	Logger  logrus.FieldLogger
}

func NewEC2Fleet(clients awsclient.Factory) *EC2Fleet {
	return &EC2Fleet{Clients: clients}
}

func (f *EC2Fleet) Label() string {
	return "EC2 Fleet"
}

func (f *EC2Fleet) Describe(ctx context.Context, conn awsclient.Connection, sel Selector, selectedID string, showAll bool) error {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return err
	}

	options := Options{}
	var token *string
	for {
		loggerOrDefault(f.Logger).Debugf("DescribeFleets on %s", conn)
		out, err := client.DescribeFleetsWithContext(ctx, &ec2.DescribeFleetsInput{NextToken: token})
		if err != nil {
			return err
		}

		for _, data := range out.Fleets {
			id := aws.StringValue(data.FleetId)
			selected := id == selectedID
			if selected || showAll || isActiveAndMaintainEC2Fleet(data) {
				label := fmt.Sprintf("%s - %s (%s) (%s)", f.Label(), id, aws.StringValue(data.FleetState), aws.StringValue(data.Type))
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

func (f *EC2Fleet) Modify(ctx context.Context, conn awsclient.Connection, id string, targetCapacity, min, max int) error {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return err
	}

	// Lowering the target must not terminate anything; callers terminate
	// specific instances themselves.
	input := &ec2.ModifyFleetInput{
		FleetId: aws.String(id),
		TargetCapacitySpecification: &ec2.TargetCapacitySpecificationRequest{
			TotalTargetCapacity: aws.Int64(int64(targetCapacity)),
		},
		ExcessCapacityTerminationPolicy: aws.String(ec2.FleetExcessCapacityTerminationPolicyNoTermination),
	}
	loggerOrDefault(f.Logger).WithField("fleet", id).Infof("Modifying target capacity to %d", targetCapacity)
	_, err = client.ModifyFleetWithContext(ctx, input)
	return err
}

func (f *EC2Fleet) GetState(ctx context.Context, conn awsclient.Connection, id string) (*FleetStateStats, error) {
	client, err := f.Clients.EC2(conn)
	if err != nil {
		return nil, err
	}

	loggerOrDefault(f.Logger).WithField("fleet", id).Debug("DescribeFleets")
	out, err := client.DescribeFleetsWithContext(ctx, &ec2.DescribeFleetsInput{
		FleetIds: aws.StringSlice([]string{id}),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Fleets) == 0 {
		return nil, notFound(id)
	}

	instances, err := f.activeInstances(ctx, client, id)
	if err != nil {
		return nil, err
	}

	return newEC2FleetStats(id, out.Fleets[0], instances), nil
}

func (f *EC2Fleet) GetStateBatch(ctx context.Context, conn awsclient.Connection, ids []string) (map[string]*FleetStateStats, error) {
	stats := map[string]*FleetStateStats{}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return stats, nil
	}

	client, err := f.Clients.EC2(conn)
	if err != nil {
		return nil, err
	}

	// Instances can only be listed one fleet at a time.
	instancesByID := make(map[string][]string, len(ids))
	for _, id := range ids {
		instances, err := f.activeInstances(ctx, client, id)
		if err != nil {
			return nil, err
		}
		instancesByID[id] = instances
	}

	// Responses are not guaranteed to follow the order of FleetIds, so
	// records are matched back by id.
	var token *string
	for {
		loggerOrDefault(f.Logger).Debugf("DescribeFleets for %d fleets", len(ids))
		out, err := client.DescribeFleetsWithContext(ctx, &ec2.DescribeFleetsInput{
			FleetIds:  aws.StringSlice(ids),
			NextToken: token,
		})
		if err != nil {
			return nil, err
		}

		for _, data := range out.Fleets {
			id := aws.StringValue(data.FleetId)
			instances, ok := instancesByID[id]
			if !ok {
				continue
			}
			stats[id] = newEC2FleetStats(id, data, instances)
		}

		if aws.StringValue(out.NextToken) == "" {
			break
		}
		token = out.NextToken
	}

	return stats, nil
}

func (f *EC2Fleet) activeInstances(ctx context.Context, client awsclient.EC2API, id string) ([]string, error) {
	instances := []string{}
	var token *string
	for {
		loggerOrDefault(f.Logger).WithField("fleet", id).Debug("DescribeFleetInstances")
		out, err := client.DescribeFleetInstancesWithContext(ctx, &ec2.DescribeFleetInstancesInput{
			FleetId:   aws.String(id),
			NextToken: token,
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

func newEC2FleetStats(id string, data *ec2.FleetData, instances []string) *FleetStateStats {
	var desired int64
	if data.TargetCapacitySpecification != nil {
		desired = aws.Int64Value(data.TargetCapacitySpecification.TotalTargetCapacity)
	}

	weights := map[string]float64{}
	for _, config := range data.LaunchTemplateConfigs {
		for _, o := range config.Overrides {
			collectWeight(weights, o.InstanceType, o.WeightedCapacity)
		}
	}

	return NewFleetStateStats(id, int(desired), ec2FleetState(aws.StringValue(data.FleetState)), instances, weights)
}

func ec2FleetState(s string) State {
	return State{
		Active:    s == ec2.FleetStateCodeActive || s == ec2.FleetStateCodeModifying || s == ec2.FleetStateCodeSubmitted,
		Modifying: s == ec2.FleetStateCodeSubmitted || s == ec2.FleetStateCodeModifying,
		Detailed:  s,
	}
}

func isActiveAndMaintainEC2Fleet(data *ec2.FleetData) bool {
	return aws.StringValue(data.Type) == ec2.FleetTypeMaintain && ec2FleetState(aws.StringValue(data.FleetState)).Active
}
