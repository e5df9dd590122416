package main

import (
	"bytes"
	"io"
	"log/slog"
	"miniSheet/contracts"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

type WebhookSendCommand struct {
	Webhook string
	Cell    contracts.Cell
}

// WebhookDispatcher posts changed cells to the url subscribed for that cell.
// Delivery is best effort: failures are logged, nothing is retried.
type WebhookDispatcher struct {
	mu           sync.RWMutex
	webhooks     map[string]string
	queue        chan WebhookSendCommand
	done         chan struct{}
	closeOnce    sync.Once
	workers      sync.WaitGroup
	workersCount int
	client       *http.Client
	logger       *slog.Logger
}

func NewWebhookDispatcher(workersCount int, logger *slog.Logger) *WebhookDispatcher {
	if workersCount < 1 {
		workersCount = DefaultWebhookWorkersCount
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &WebhookDispatcher{
		webhooks:     map[string]string{},
		queue:        make(chan WebhookSendCommand, webhookQueueSize),
		done:         make(chan struct{}),
		workersCount: workersCount,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

// SetWebhookUrl subscribes webhookUrl to cellId changes, an empty url unsubscribes
func (manager *WebhookDispatcher) SetWebhookUrl(cellId string, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, cellId)
	} else {
		manager.webhooks[cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellId string) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	return manager.webhooks[cellId]
}

func (manager *WebhookDispatcher) Notify(cells []contracts.Cell) {
	commands := manager.collectCommands(cells)
	if len(commands) == 0 {
		return
	}

	go manager.addToQueue(commands)
}

func (manager *WebhookDispatcher) collectCommands(cells []contracts.Cell) []WebhookSendCommand {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	var commands []WebhookSendCommand
	for _, cell := range cells {
		if webhook, ok := manager.webhooks[cell.Id]; ok {
			commands = append(commands, WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			})
		}
	}

	return commands
}

func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		select {
		case manager.queue <- command:
		case <-manager.done:
			return
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops the workers, commands still queued are dropped
func (manager *WebhookDispatcher) Close() {
	manager.closeOnce.Do(func() {
		close(manager.done)
	})
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for {
		select {
		case command := <-manager.queue:
			manager.send(command)
		case <-manager.done:
			return
		}
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := json.Marshal(command.Cell)
	if err != nil {
		manager.logger.Error("webhook payload encode failed", "cell_id", command.Cell.Id, "error", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		manager.logger.Warn("webhook send failed", "cell_id", command.Cell.Id, "webhook", command.Webhook, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		manager.logger.Warn("unexpected webhook response", "cell_id", command.Cell.Id, "webhook", command.Webhook, "status", response.Status)
	}
}
