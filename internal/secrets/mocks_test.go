package secrets

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type fakeKeyVault struct {
	secrets map[string]string
	err     error
	asked   []string
}

func (f *fakeKeyVault) GetSecret(_ context.Context, name string, _ string, _ *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error) {
	f.asked = append(f.asked, name)
	if f.err != nil {
		return azsecrets.GetSecretResponse{}, f.err
	}
	v, ok := f.secrets[name]
	if !ok {
		return azsecrets.GetSecretResponse{}, notFoundError()
	}
	return azsecrets.GetSecretResponse{Secret: azsecrets.Secret{Value: &v}}, nil
}

type fakeSecretsManager struct {
	secrets map[string]string
	err     error
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.secrets[*in.SecretId]
	if !ok {
		return nil, awsNotFound()
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: &v}, nil
}

type failingLookup struct{ err error }

func (f failingLookup) Lookup(context.Context, string) (string, bool, error) {
	return "", false, f.err
}
