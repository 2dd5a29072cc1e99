/*
  Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.

  Licensed under the Apache License, Version 2.0 (the "License").
  You may not use this file except in compliance with the License.
  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.
*/

// Package secrets fetches database credentials from AWS Secrets Manager
// when a connection record references a secret instead of storing the
// password inline.
package secrets

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"mysqlhook/auth_helpers"
	"mysqlhook/connection"
	"mysqlhook/error_util"
	"mysqlhook/region_util"
)

const (
	secretUsernameKey = "username"
	secretPasswordKey = "password"
)

type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type ClientProvider func(ctx context.Context, region region_util.Region, creds aws.CredentialsProvider) (SecretsManagerClient, error)

func NewSecretsManagerClient(ctx context.Context, region region_util.Region, creds aws.CredentialsProvider) (SecretsManagerClient, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(string(region))}
	if creds != nil {
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// DbSecret is the credential pair stored in the secret value.
type DbSecret struct {
	Username string
	Password string
}

type Provider struct {
	clientProvider ClientProvider
}

func NewProvider() *Provider {
	return &Provider{clientProvider: NewSecretsManagerClient}
}

// SetClientProvider replaces the SDK client factory. Test use only.
func (p *Provider) SetClientProvider(f ClientProvider) {
	p.clientProvider = f
}

// GetDbSecret fetches and decodes the secret value. The region comes from
// the AWS record's region_name extra, the database host, or the secret ARN,
// in that order.
func (p *Provider) GetDbSecret(ctx context.Context, secretID string, host string, awsRecord *connection.Record) (DbSecret, error) {
	var secret DbSecret

	region, err := auth_helpers.GetAwsRegion(host, awsRecord)
	if err != nil {
		return secret, err
	}
	if region == "" {
		region = region_util.GetRegionFromArn(secretID)
	}
	if region == "" {
		return secret, error_util.NewInvalidConfigurationError(error_util.GetMessage("SecretsManager.unableToDetermineRegion", secretID))
	}

	creds, err := auth_helpers.GetAwsCredentialsProvider(ctx, awsRecord)
	if err != nil {
		return secret, error_util.NewCredentialsError(error_util.GetMessage("SecretsManager.unableToGetSecretValue", err), err)
	}

	svc, err := p.clientProvider(ctx, region, creds)
	if err != nil {
		return secret, error_util.NewCredentialsError(error_util.GetMessage("SecretsManager.unableToGetSecretValue", err), err)
	}

	secretOutput, err := svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		slog.Error(error_util.GetMessage("SecretsManager.unableToGetSecretValue", err))
		return secret, error_util.NewCredentialsError(error_util.GetMessage("SecretsManager.unableToGetSecretValue", err), err)
	}

	var secretMap map[string]string
	if err = json.Unmarshal([]byte(*secretOutput.SecretString), &secretMap); err != nil {
		return secret, error_util.NewCredentialsError(error_util.GetMessage("SecretsManager.unableToParseSecretValue", err), err)
	}

	secret.Username = secretMap[secretUsernameKey]
	secret.Password = secretMap[secretPasswordKey]
	if secret.Username == "" || secret.Password == "" {
		return secret, error_util.NewCredentialsError(error_util.GetMessage("SecretsManager.emptySecretValue", secretUsernameKey, secretPasswordKey), nil)
	}
	return secret, nil
}
