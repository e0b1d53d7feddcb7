package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blogapi/internal/database"
)

type indexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
}

// Join pipelines look up posts by id_author and contents by id_post.
var steps = []indexStep{
	{
		Name:       "create_index_post_id_author",
		Collection: database.PostCollection,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "id_author", Value: 1}},
			Options: options.Index().SetName("idx_post_id_author"),
		},
	},
	{
		Name:       "create_index_post_date",
		Collection: database.PostCollection,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_post_date"),
		},
	},
	{
		Name:       "create_index_content_id_post",
		Collection: database.ContentCollection,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "id_post", Value: 1}},
			Options: options.Index().SetName("idx_content_id_post"),
		},
	},
}

// EnsureIndexes creates the secondary indexes used by the join pipelines.
// createIndexes is idempotent, so this runs on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log logrus.FieldLogger) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_name":   db.Name(),
	})

	log.WithFields(logrus.Fields{
		"event":  "db_index_start",
		"status": "in_progress",
	}).Info("ensuring indexes")

	for _, step := range steps {
		stepStart := time.Now()
		name, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, step.Model)
		if err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_index_failed",
				"status":           "error",
				"index_step":       step.Name,
				"error_message":    err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).Error("index step failed")
			return fmt.Errorf("index step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_index_step",
			"status":           "success",
			"index_step":       step.Name,
			"index_name":       name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("index ensured")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_index_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("indexes ready")

	return nil
}
