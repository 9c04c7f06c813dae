package service

import (
	"context"
	"encoding/json"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/events"
	pktNats "legal-assistant-be/pkg/nats"
	"legal-assistant-be/pkg/rag"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
}

// indexerService drains the in-process indexing queue. Each message carries
// one uploaded document; the rag.Indexer does the extract/chunk/embed work
// and the service flips is_indexed afterwards.
type indexerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	indexer        *rag.Indexer
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	indexer *rag.Indexer,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		indexer:        indexer,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.log.Error("indexer.service", "failed to unmarshal index message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever
		return
	}

	uow := is.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		is.log.Error("indexer.service", "failed to load document", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}
	if doc == nil {
		// Deleted between upload and processing
		msg.Ack()
		return
	}

	chunkCount, err := is.indexer.IndexDocument(ctx, doc.CaseId, doc.Id, doc.Filename, doc.FilePath)
	if err != nil {
		is.log.Error("indexer.service", "indexing failed", map[string]interface{}{
			"document_id": doc.Id.String(),
			"filename":    doc.Filename,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	// Mark indexed even with zero chunks: the pipeline ran, the file just
	// had no usable text.
	doc.IsIndexed = true
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		is.log.Error("indexer.service", "failed to mark document indexed", map[string]interface{}{
			"document_id": doc.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	is.log.Info("indexer.service", "document indexed", map[string]interface{}{
		"document_id": doc.Id.String(),
		"filename":    doc.Filename,
		"chunks":      chunkCount,
	})

	if is.eventPublisher != nil {
		evt := events.NewEvent(events.TypeDocumentIndexed, map[string]interface{}{
			"document_id": doc.Id,
			"case_id":     doc.CaseId,
			"filename":    doc.Filename,
			"chunks":      chunkCount,
		})
		if err := is.eventPublisher.Publish(ctx, evt); err != nil {
			is.log.Warn("indexer.service", "failed to publish DOCUMENT_INDEXED event", map[string]interface{}{
				"document_id": doc.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	msg.Ack()
}
