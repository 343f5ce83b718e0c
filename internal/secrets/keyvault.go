package secrets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
)

// keyVaultClient is the subset of azsecrets.Client used here.
type keyVaultClient interface {
	GetSecret(ctx context.Context, name string, version string, options *azsecrets.GetSecretOptions) (azsecrets.GetSecretResponse, error)
}

// KeyVaultLookup reads secrets from Azure Key Vault. Key Vault names allow
// only letters, digits and dashes, so dots and underscores become dashes.
type KeyVaultLookup struct {
	client keyVaultClient
}

// NewKeyVaultLookup authenticates with the default Azure credential chain.
func NewKeyVaultLookup(vaultURL string) (*KeyVaultLookup, error) {
	if vaultURL == "" {
		return nil, fmt.Errorf("key vault URL is required")
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure default credential: %w", err)
	}
	return NewKeyVaultLookupWithCredential(vaultURL, cred)
}

// NewKeyVaultLookupWithCredential uses an explicit credential.
func NewKeyVaultLookupWithCredential(vaultURL string, cred azcore.TokenCredential) (*KeyVaultLookup, error) {
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault client: %w", err)
	}
	return &KeyVaultLookup{client: client}, nil
}

// KeyVaultSecretName maps a pipeline variable name to a Key Vault secret name.
func KeyVaultSecretName(name string) string {
	return strings.NewReplacer(".", "-", "_", "-").Replace(name)
}

func (l *KeyVaultLookup) Lookup(ctx context.Context, name string) (string, bool, error) {
	resp, err := l.client.GetSecret(ctx, KeyVaultSecretName(name), "", nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			return "", false, nil
		}
		return "", false, fmt.Errorf("key vault lookup of %s failed: %w", name, err)
	}
	if resp.Value == nil || *resp.Value == "" {
		return "", false, nil
	}
	return *resp.Value, true, nil
}
