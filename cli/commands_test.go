package cli

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/autoscaling"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/golang/mock/gomock"
	"github.com/mitchellh/cli"
	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ui      *cli.MockUi
	ec2     *mock.MockEC2API
	asg     *mock.MockAutoScalingAPI
	factory *mock.Factory
	meta    *Meta
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		ui:  cli.NewMockUi(),
		ec2: mock.NewMockEC2API(ctrl),
		asg: mock.NewMockAutoScalingAPI(ctrl),
	}
	env.factory = &mock.Factory{EC2Client: env.ec2, AutoScalingClient: env.asg}

	logger := logrus.New()
	logger.Out = ioutil.Discard
	env.meta = &Meta{Ui: env.ui, Clients: env.factory, Logger: logger}
	return env
}

func (e *testEnv) run(t *testing.T, name string, args ...string) int {
	factory, ok := commands(e.meta)[name]
	require.True(t, ok, name)
	command, err := factory()
	require.NoError(t, err)
	return command.Run(args)
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, 0, env.run(t, "version"))
	assert.Equal(t, "ec2fleet "+Version+"\n", env.ui.OutputWriter.String())
}

func TestConfigCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "ec2fleet")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	valid := filepath.Join(dir, "valid.yml")
	require.NoError(t, ioutil.WriteFile(valid, []byte("pollInterval: 1m\nclouds:\n  - name: ci\n    region: us-east-1\n    fleet: sfr-1\n"), 0644))
	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, ioutil.WriteFile(invalid, []byte("pollInterval: 1m\n"), 0644))

	env := newTestEnv(t)
	assert.Equal(t, 0, env.run(t, "config", "-config-path", valid))
	assert.Contains(t, env.ui.OutputWriter.String(), "sfr-1")

	env = newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "config", "-config-path", invalid))
	assert.Contains(t, env.ui.ErrorWriter.String(), "Validation error")

	env = newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "config"))
	assert.Contains(t, env.ui.ErrorWriter.String(), "-config-path is required")
}

func TestLogLevelFlag(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "describe", "-log-level", "loud"))
	assert.Contains(t, env.ui.ErrorWriter.String(), "not a valid logrus Level")

	env = newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "config", "-log-level", "debug"))
	assert.Equal(t, logrus.DebugLevel, env.meta.Logger.GetLevel())
}

func TestDescribeCommand(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.EXPECT().DescribeSpotFleetRequestsWithContext(gomock.Any(), gomock.Any()).Return(&ec2.DescribeSpotFleetRequestsOutput{
		SpotFleetRequestConfigs: []*ec2.SpotFleetRequestConfig{
			{
				SpotFleetRequestId:     aws.String("sfr-1"),
				SpotFleetRequestState:  aws.String("active"),
				SpotFleetRequestConfig: &ec2.SpotFleetRequestConfigData{Type: aws.String("maintain")},
			},
			{
				SpotFleetRequestId:     aws.String("sfr-2"),
				SpotFleetRequestState:  aws.String("cancelled_terminating"),
				SpotFleetRequestConfig: &ec2.SpotFleetRequestConfigData{Type: aws.String("maintain")},
			},
		},
	}, nil)
	env.ec2.EXPECT().DescribeFleetsWithContext(gomock.Any(), gomock.Any()).Return(&ec2.DescribeFleetsOutput{}, nil)
	env.asg.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(&autoscaling.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: []*autoscaling.Group{{AutoScalingGroupName: aws.String("workers")}},
	}, nil)

	assert.Equal(t, 0, env.run(t, "describe", "-region", "us-east-1", "-selected", "workers"))
	assert.Equal(t, "  Spot Fleet - sfr-1 (active) (maintain)\n* Auto Scaling Group - workers\n", env.ui.OutputWriter.String())
	assert.Contains(t, env.factory.Connections, awsclient.Connection{Region: "us-east-1"})
}

func TestDescribeCommandError(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.EXPECT().DescribeSpotFleetRequestsWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))

	assert.Equal(t, 1, env.run(t, "describe"))
	assert.Contains(t, env.ui.ErrorWriter.String(), "Spot Fleet: denied")
}

func TestStateCommandSingle(t *testing.T) {
	env := newTestEnv(t)
	env.asg.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(&autoscaling.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: []*autoscaling.Group{{
			AutoScalingGroupName: aws.String("workers"),
			DesiredCapacity:      aws.Int64(2),
			Instances:            []*autoscaling.Instance{{InstanceId: aws.String("i-2")}, {InstanceId: aws.String("i-1")}},
		}},
	}, nil)

	assert.Equal(t, 0, env.run(t, "state", "workers"))
	assert.Equal(t, "workers:\n  state: active (active=true, modifying=false)\n  capacity: 2/2\n  instances: i-1, i-2\n", env.ui.OutputWriter.String())
}

func TestStateCommandNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.asg.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(&autoscaling.DescribeAutoScalingGroupsOutput{}, nil)

	assert.Equal(t, 1, env.run(t, "state", "workers"))
	assert.Contains(t, env.ui.ErrorWriter.String(), "workers")
}

func TestStateCommandBatch(t *testing.T) {
	env := newTestEnv(t)
	env.asg.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: aws.StringSlice([]string{"a", "b"}),
	}).Return(&autoscaling.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: []*autoscaling.Group{{
			AutoScalingGroupName: aws.String("b"),
			DesiredCapacity:      aws.Int64(1),
			Status:               aws.String("Delete in progress"),
		}},
	}, nil)

	assert.Equal(t, 1, env.run(t, "state", "a", "b"))
	assert.Contains(t, env.ui.OutputWriter.String(), "b:\n  state: Delete in progress (active=true, modifying=true)\n  capacity: 0/1")
	assert.Contains(t, env.ui.ErrorWriter.String(), "fleet a doesn't exist")
}

func TestStateCommandRequiresID(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "state"))
}

func TestModifyCommand(t *testing.T) {
	env := newTestEnv(t)
	env.asg.EXPECT().UpdateAutoScalingGroupWithContext(gomock.Any(), &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName:             aws.String("workers"),
		MinSize:                          aws.Int64(1),
		MaxSize:                          aws.Int64(5),
		DesiredCapacity:                  aws.Int64(3),
		NewInstancesProtectedFromScaleIn: aws.Bool(true),
	}).Return(&autoscaling.UpdateAutoScalingGroupOutput{}, nil)

	assert.Equal(t, 0, env.run(t, "modify", "-target", "3", "-min", "1", "-max", "5", "workers"))
	assert.Contains(t, env.ui.OutputWriter.String(), "target capacity set to 3")
}

func TestModifyCommandValidation(t *testing.T) {
	cases := [][]string{
		{"workers"},
		{"-target", "3"},
		{"-target", "3", "-max", "2", "workers"},
		{"-target", "1", "-min", "2", "workers"},
	}
	for _, args := range cases {
		env := newTestEnv(t)
		assert.Equal(t, 1, env.run(t, "modify", args...), "%v", args)
	}
}

func TestPermissionsCommand(t *testing.T) {
	env := newTestEnv(t)
	env.ec2.EXPECT().DescribeInstancesWithContext(gomock.Any(), gomock.Any()).Return(&ec2.DescribeInstancesOutput{}, nil)
	env.ec2.EXPECT().CreateTagsWithContext(gomock.Any(), gomock.Any()).Return(&ec2.CreateTagsOutput{}, nil)
	env.ec2.EXPECT().DescribeInstanceTypesWithContext(gomock.Any(), gomock.Any()).Return(&ec2.DescribeInstanceTypesOutput{}, nil)
	env.asg.EXPECT().DescribeAutoScalingGroupsWithContext(gomock.Any(), gomock.Any()).Return(&autoscaling.DescribeAutoScalingGroupsOutput{}, nil)

	assert.Equal(t, 0, env.run(t, "permissions", "workers"))
	assert.Contains(t, env.ui.OutputWriter.String(), "All permissions are granted")
}

func TestPermissionsCommandFactoryError(t *testing.T) {
	env := newTestEnv(t)
	env.factory.Err = errors.New("no such profile")

	assert.Equal(t, 1, env.run(t, "permissions", "-credentials-id", "nope"))
	assert.Contains(t, env.ui.ErrorWriter.String(), "no such profile")
}

func TestWatchCommandRequiresConfig(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, 1, env.run(t, "watch"))
}
