package fleet

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

const asgActiveState = "active"

// AutoScalingGroupFleet is the backend for Auto Scaling Groups, addressed by
// group name. A group that exists is always active; it is modifying while
// its instance count differs from its desired capacity. Instance type
// weights are not reported.
type AutoScalingGroupFleet struct {
	Clients awsclient.Factory
	Logger  logrus.FieldLogger
}

func NewAutoScalingGroupFleet(clients awsclient.Factory) *AutoScalingGroupFleet {
	return &AutoScalingGroupFleet{Clients: clients}
}

func (f *AutoScalingGroupFleet) Label() string {
	return "Auto Scaling Group"
}

// Describe lists every group: groups are persistent and always active, so
// showAll makes no difference.
func (f *AutoScalingGroupFleet) Describe(ctx context.Context, conn awsclient.Connection, sel Selector, selectedID string, showAll bool) error {
	client, err := f.Clients.AutoScaling(conn)
	if err != nil {
		return err
	}

	options := Options{}
	err = f.describeGroups(ctx, client, nil, func(g *autoscaling.Group) {
		name := aws.StringValue(g.AutoScalingGroupName)
		options.Add(fmt.Sprintf("%s - %s", f.Label(), name), name, name == selectedID)
	})
	if err != nil {
		return err
	}

	options.addTo(sel)
	return nil
}

func (f *AutoScalingGroupFleet) Modify(ctx context.Context, conn awsclient.Connection, id string, targetCapacity, min, max int) error {
	client, err := f.Clients.AutoScaling(conn)
	if err != nil {
		return err
	}

	input := &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName:             aws.String(id),
		MinSize:                          aws.Int64(int64(min)),
		MaxSize:                          aws.Int64(int64(max)),
		DesiredCapacity:                  aws.Int64(int64(targetCapacity)),
		NewInstancesProtectedFromScaleIn: aws.Bool(true),
	}
	loggerOrDefault(f.Logger).WithField("fleet", id).Infof("Modifying desired capacity to %d (min %d, max %d)", targetCapacity, min, max)
	_, err = client.UpdateAutoScalingGroupWithContext(ctx, input)
	return err
}

func (f *AutoScalingGroupFleet) GetState(ctx context.Context, conn awsclient.Connection, id string) (*FleetStateStats, error) {
	stats, err := f.GetStateBatch(ctx, conn, []string{id})
	if err != nil {
		return nil, err
	}
	s, ok := stats[id]
	if !ok {
		return nil, notFound(id)
	}
	return s, nil
}

func (f *AutoScalingGroupFleet) GetStateBatch(ctx context.Context, conn awsclient.Connection, ids []string) (map[string]*FleetStateStats, error) {
	stats := map[string]*FleetStateStats{}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return stats, nil
	}

	client, err := f.Clients.AutoScaling(conn)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	err = f.describeGroups(ctx, client, ids, func(g *autoscaling.Group) {
		name := aws.StringValue(g.AutoScalingGroupName)
		if wanted[name] {
			stats[name] = newAutoScalingGroupStats(g)
		}
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// describeGroups calls fn for every group on every page. When names is nil
// all groups are listed.
func (f *AutoScalingGroupFleet) describeGroups(ctx context.Context, client awsclient.AutoScalingAPI, names []string, fn func(*autoscaling.Group)) error {
	var token *string
	for {
		input := &autoscaling.DescribeAutoScalingGroupsInput{NextToken: token}
		if names != nil {
			input.AutoScalingGroupNames = aws.StringSlice(names)
		}

		loggerOrDefault(f.Logger).Debugf("DescribeAutoScalingGroups for %d groups", len(names))
		out, err := client.DescribeAutoScalingGroupsWithContext(ctx, input)
		if err != nil {
			return err
		}

		for _, g := range out.AutoScalingGroups {
			fn(g)
		}

		if aws.StringValue(out.NextToken) == "" {
			return nil
		}
		token = out.NextToken
	}
}

func newAutoScalingGroupStats(g *autoscaling.Group) *FleetStateStats {
	instances := make([]string, 0, len(g.Instances))
	for _, i := range g.Instances {
		instances = append(instances, aws.StringValue(i.InstanceId))
	}

	desired := aws.Int64Value(g.DesiredCapacity)
	detailed := asgActiveState
	if g.Status != nil {
		detailed = *g.Status
	}

	state := State{
		Active:    true,
		Modifying: desired != int64(len(instances)),
		Detailed:  detailed,
	}
	return NewFleetStateStats(aws.StringValue(g.AutoScalingGroupName), int(desired), state, instances, nil)
}
