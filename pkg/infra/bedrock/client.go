package bedrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRegion      = "us-east-1"
	defaultSessionName = "RuleGuardJudgeSession"
)

type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	UseRole      bool
	RoleARN      string
	SessionName  string
}

func (c Credentials) key() string {
	return fmt.Sprintf("%s:%s:%v:%s:%s", c.AccessKey, c.region(), c.UseRole, c.RoleARN, c.SessionName)
}

func (c Credentials) region() string {
	if c.Region == "" {
		return DefaultRegion
	}
	return c.Region
}

// Runtime is the subset of the Bedrock runtime API used for judging.
type Runtime interface {
	Converse(
		ctx context.Context,
		params *bedrockruntime.ConverseInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.ConverseOutput, error)
}

//go:generate mockery --name=RuntimeProvider --dir=. --output=../../../mocks --filename=bedrock_runtime_provider_mock.go --case=underscore --with-expecter

type RuntimeProvider interface {
	Get(ctx context.Context, creds Credentials) (Runtime, error)
}

// ClientPool builds one runtime client per credential set and reuses it.
type ClientPool struct {
	clients sync.Map
	sf      singleflight.Group
}

func NewClientPool() *ClientPool {
	return &ClientPool{}
}

func (p *ClientPool) Get(ctx context.Context, creds Credentials) (Runtime, error) {
	key := creds.key()
	if v, ok := p.clients.Load(key); ok {
		if cl, ok := v.(*bedrockruntime.Client); ok {
			return cl, nil
		}
	}
	v, err, _ := p.sf.Do(key, func() (any, error) {
		if v, ok := p.clients.Load(key); ok {
			return v, nil
		}
		cfg, err := buildAwsConfig(ctx, creds)
		if err != nil {
			return nil, err
		}
		cl := bedrockruntime.NewFromConfig(cfg)
		p.clients.Store(key, cl)
		return cl, nil
	})
	if err != nil {
		return nil, err
	}
	cl, ok := v.(*bedrockruntime.Client)
	if !ok {
		return nil, fmt.Errorf("invalid client type in pool")
	}
	return cl, nil
}

func buildAwsConfig(ctx context.Context, creds Credentials) (aws.Config, error) {
	region := creds.region()
	if creds.UseRole && creds.RoleARN != "" {
		assumed, err := assumeRole(ctx, creds, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, assumed, region)
	}
	return loadAWSConfig(ctx, creds, region)
}

func loadAWSConfig(ctx context.Context, creds Credentials, region string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithRetryMaxAttempts(1),
	}
	if creds.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     creds.AccessKey,
					SecretAccessKey: creds.SecretKey,
					SessionToken:    creds.SessionToken,
				}, nil
			},
		)))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}

func assumeRole(ctx context.Context, creds Credentials, region string) (Credentials, error) {
	baseCfg, err := loadAWSConfig(ctx, creds, region)
	if err != nil {
		return Credentials{}, fmt.Errorf("unable to load base AWS config: %w", err)
	}

	sessionName := creds.SessionName
	if sessionName == "" {
		sessionName = defaultSessionName
	}

	output, err := sts.NewFromConfig(baseCfg).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(creds.RoleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to assume role: %w", err)
	}
	if output.Credentials == nil {
		return Credentials{}, fmt.Errorf("assume role returned no credentials")
	}
	return Credentials{
		AccessKey:    aws.ToString(output.Credentials.AccessKeyId),
		SecretKey:    aws.ToString(output.Credentials.SecretAccessKey),
		SessionToken: aws.ToString(output.Credentials.SessionToken),
		Region:       region,
	}, nil
}
