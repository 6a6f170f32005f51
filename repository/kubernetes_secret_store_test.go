package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"biotrackr/repository"
)

const (
	testNamespace  = "biotrackr"
	testSecretName = "biotrackr-fitbit-secrets"
)

func newStoreWithSecret(t *testing.T, data map[string][]byte) *repository.KubernetesSecretStore {
	t.Helper()

	clientset := fake.NewSimpleClientset(&corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      testSecretName,
			Namespace: testNamespace,
		},
		Data: data,
	})
	return repository.NewKubernetesSecretStoreWithClientset(clientset, testNamespace, testSecretName, nil)
}

func TestKubernetesSecretStore_GetSecret(t *testing.T) {
	store := newStoreWithSecret(t, map[string][]byte{
		"RefreshToken": []byte("rt-value"),
	})

	value, err := store.GetSecret(context.Background(), "RefreshToken")
	require.NoError(t, err)
	assert.Equal(t, "rt-value", value)
}

func TestKubernetesSecretStore_GetSecret_MissingKey(t *testing.T) {
	store := newStoreWithSecret(t, map[string][]byte{
		"RefreshToken": []byte("rt-value"),
	})

	_, err := store.GetSecret(context.Background(), "AccessToken")
	assert.ErrorIs(t, err, repository.ErrSecretNotFound)
}

func TestKubernetesSecretStore_GetSecret_MissingObject(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	store := repository.NewKubernetesSecretStoreWithClientset(clientset, testNamespace, testSecretName, nil)

	_, err := store.GetSecret(context.Background(), "RefreshToken")
	assert.ErrorIs(t, err, repository.ErrSecretNotFound)
}

func TestKubernetesSecretStore_SetSecret_UpdatesExisting(t *testing.T) {
	store := newStoreWithSecret(t, map[string][]byte{
		"RefreshToken": []byte("old-rt"),
	})

	require.NoError(t, store.SetSecret(context.Background(), "AccessToken", "new-at"))
	require.NoError(t, store.SetSecret(context.Background(), "RefreshToken", "new-rt"))

	at, err := store.GetSecret(context.Background(), "AccessToken")
	require.NoError(t, err)
	assert.Equal(t, "new-at", at)

	rt, err := store.GetSecret(context.Background(), "RefreshToken")
	require.NoError(t, err)
	assert.Equal(t, "new-rt", rt)
}

func TestKubernetesSecretStore_SetSecret_CreatesObject(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	store := repository.NewKubernetesSecretStoreWithClientset(clientset, testNamespace, testSecretName, nil)

	require.NoError(t, store.SetSecret(context.Background(), "AccessToken", "first-at"))

	secret, err := clientset.CoreV1().Secrets(testNamespace).Get(context.Background(), testSecretName, metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, []byte("first-at"), secret.Data["AccessToken"])
	assert.Equal(t, corev1.SecretTypeOpaque, secret.Type)
}

func TestEnvSecretStore(t *testing.T) {
	t.Run("reads from environment", func(t *testing.T) {
		t.Setenv("BIOTRACKR_SECRET_REFRESHTOKEN", "env-rt")

		store := repository.NewEnvSecretStore(nil)

		value, err := store.GetSecret(context.Background(), "RefreshToken")
		require.NoError(t, err)
		assert.Equal(t, "env-rt", value)
	})

	t.Run("write overrides environment", func(t *testing.T) {
		t.Setenv("BIOTRACKR_SECRET_REFRESHTOKEN", "env-rt")

		store := repository.NewEnvSecretStore(nil)
		require.NoError(t, store.SetSecret(context.Background(), "RefreshToken", "written-rt"))

		value, err := store.GetSecret(context.Background(), "RefreshToken")
		require.NoError(t, err)
		assert.Equal(t, "written-rt", value)
	})

	t.Run("missing secret", func(t *testing.T) {
		store := repository.NewEnvSecretStore(nil)

		_, err := store.GetSecret(context.Background(), "AccessToken")
		assert.ErrorIs(t, err, repository.ErrSecretNotFound)
	})
}
