// ABOUTME: Kubernetes Secret-based SecretStore implementation
// ABOUTME: Stores each named secret as a key of one namespaced Secret object

package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

const lastUpdatedAnnotation = "biotrackr/last-updated"

// KubernetesSecretStore implements SecretStore using a Kubernetes Secret.
// Each named secret lives under its own data key of a single Secret object.
type KubernetesSecretStore struct {
	clientset  kubernetes.Interface
	namespace  string
	secretName string
	logger     *slog.Logger
}

// NewKubernetesSecretStore creates a secret store backed by the in-cluster
// Kubernetes API.
func NewKubernetesSecretStore(namespace, secretName string, logger *slog.Logger) (*KubernetesSecretStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	config, err := rest.InClusterConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kubernetes clientset: %w", err)
	}

	return NewKubernetesSecretStoreWithClientset(clientset, namespace, secretName, logger), nil
}

// NewKubernetesSecretStoreWithClientset creates a store with a custom
// clientset (for testing).
func NewKubernetesSecretStoreWithClientset(clientset kubernetes.Interface, namespace, secretName string, logger *slog.Logger) *KubernetesSecretStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &KubernetesSecretStore{
		clientset:  clientset,
		namespace:  namespace,
		secretName: secretName,
		logger:     logger,
	}
}

// GetSecret retrieves a named secret value.
func (s *KubernetesSecretStore) GetSecret(ctx context.Context, name string) (string, error) {
	secret, err := s.clientset.CoreV1().Secrets(s.namespace).Get(ctx, s.secretName, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", fmt.Errorf("secret object %s/%s: %w", s.namespace, s.secretName, ErrSecretNotFound)
		}
		return "", fmt.Errorf("failed to retrieve secret object: %w", err)
	}

	value, exists := secret.Data[name]
	if !exists {
		return "", fmt.Errorf("key %s: %w", name, ErrSecretNotFound)
	}

	s.logger.Debug("Retrieved secret from Kubernetes",
		"secret_name", s.secretName,
		"key", name)
	return string(value), nil
}

// SetSecret writes a named secret value, creating the Secret object on first
// use.
func (s *KubernetesSecretStore) SetSecret(ctx context.Context, name, value string) error {
	secret, err := s.clientset.CoreV1().Secrets(s.namespace).Get(ctx, s.secretName, metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return fmt.Errorf("failed to get secret object for update: %w", err)
		}
		return s.createSecret(ctx, name, value)
	}

	if secret.Data == nil {
		secret.Data = make(map[string][]byte)
	}
	secret.Data[name] = []byte(value)
	if secret.Annotations == nil {
		secret.Annotations = make(map[string]string)
	}
	secret.Annotations[lastUpdatedAnnotation] = time.Now().UTC().Format(time.RFC3339)

	if _, err := s.clientset.CoreV1().Secrets(s.namespace).Update(ctx, secret, metav1.UpdateOptions{}); err != nil {
		s.logger.Error("Failed to update secret", "key", name, "error", err)
		return fmt.Errorf("failed to update secret object: %w", err)
	}

	s.logger.Info("Updated secret in Kubernetes", "secret_name", s.secretName, "key", name)
	return nil
}

func (s *KubernetesSecretStore) createSecret(ctx context.Context, name, value string) error {
	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.secretName,
			Namespace: s.namespace,
			Labels: map[string]string{
				"app.kubernetes.io/name":       "biotrackr",
				"app.kubernetes.io/component":  "fitbit-credentials",
				"app.kubernetes.io/managed-by": "biotrackr",
			},
			Annotations: map[string]string{
				lastUpdatedAnnotation: time.Now().UTC().Format(time.RFC3339),
			},
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{name: []byte(value)},
	}

	if _, err := s.clientset.CoreV1().Secrets(s.namespace).Create(ctx, secret, metav1.CreateOptions{}); err != nil {
		s.logger.Error("Failed to create secret object", "key", name, "error", err)
		return fmt.Errorf("failed to create secret object: %w", err)
	}

	s.logger.Info("Created secret in Kubernetes", "secret_name", s.secretName, "key", name)
	return nil
}
