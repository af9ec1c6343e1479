package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"tryon-api/internal/domain/repositories"
)

const backendVertex = "vertex"

// GenAI Client Pool実装
type genAIClientPool struct {
	config    *repositories.AIClientConfig
	newClient func(ctx context.Context, cc *genai.ClientConfig) (*genai.Client, error)
	client    *genai.Client
	mutex     sync.RWMutex
}

// 新しいGenAIクライアントプールを作成
func NewGenAIClientPool(config *repositories.AIClientConfig) repositories.GenAIClientPool {
	return &genAIClientPool{
		config:    config,
		newClient: genai.NewClient,
	}
}

func (p *genAIClientPool) GetContentGenerator(ctx context.Context) (repositories.ContentGenerator, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (p *genAIClientPool) CheckCredentials() error {
	_, err := p.clientConfig()
	return err
}

func (p *genAIClientPool) getClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// ダブルチェックロッキング
	if p.client != nil {
		return p.client, nil
	}

	cc, err := p.clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := p.newClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	slog.Info("GenAI client created", "backend", p.config.Backend)
	p.client = client
	return p.client, nil
}

func (p *genAIClientPool) clientConfig() (*genai.ClientConfig, error) {
	if p.config.Backend == backendVertex {
		// Vertex AI はADCで認証する
		return &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  p.config.ProjectID,
			Location: p.config.Location,
		}, nil
	}

	if p.config.APIKey == "" {
		return nil, repositories.ErrMissingCredentials
	}

	return &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  p.config.APIKey,
	}, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// GenAI Clientはリソースクリーンアップ不要
	p.client = nil
	return nil
}
