package board

import (
	"encoding/json"

	"github.com/campusopoly/backend/app/models"
	"github.com/campusopoly/backend/platform/cache"
	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

const cacheKey = "board:tiles"

// Catalog is the read-only tile reference data for one session, loaded once
// at game start. An empty catalog makes every landing a no-op.
type Catalog struct {
	tiles   []models.Tile
	byIndex map[int]*models.Tile
}

func New(tiles []models.Tile) *Catalog {
	c := &Catalog{
		tiles:   tiles,
		byIndex: make(map[int]*models.Tile, len(tiles)),
	}
	for i := range c.tiles {
		c.byIndex[c.tiles[i].Index] = &c.tiles[i]
	}
	return c
}

// Load reads the 40 tiles ordered by index, going through the Redis cache
// first. A load failure is logged and yields an empty catalog; there is no
// retry, a new session loads again.
func Load(db *pg.DB, conn *redis.Conn) *Catalog {
	log := logrus.WithField("component", "board")

	if conn != nil {
		if raw, err := cache.Get(cacheKey, conn); err == nil && raw != "" {
			var tiles []models.Tile
			if err := json.Unmarshal([]byte(raw), &tiles); err == nil {
				return New(tiles)
			}
			log.Warn("discarding unreadable cached board")
		}
	}

	var tiles []models.Tile
	if err := db.Model(&tiles).Order("index ASC").Select(); err != nil {
		log.WithError(err).Error("failed loading board tiles, landings will be no-ops")
		return New(nil)
	}

	if conn != nil {
		if raw, err := json.Marshal(tiles); err == nil {
			if err := cache.Set(cacheKey, string(raw), conn); err != nil {
				log.WithError(err).Warn("failed caching board tiles")
			}
		}
	}
	return New(tiles)
}

// Invalidate drops the cached board so the next load hits the database.
// Called after admin writes on the tiles table; running sessions keep the
// catalog they loaded at start.
func Invalidate(conn *redis.Conn) error {
	return cache.Del(cacheKey, conn)
}

// ByIndex returns the tile at a board position, if known.
func (c *Catalog) ByIndex(index int) (*models.Tile, bool) {
	t, ok := c.byIndex[index]
	return t, ok
}

func (c *Catalog) Tiles() []models.Tile {
	return c.tiles
}

func (c *Catalog) Len() int {
	return len(c.tiles)
}
