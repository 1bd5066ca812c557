// Package cache provides a small generic LRU cache used to keep decoded
// images and font faces around between draws.
//
//	c := cache.New[string, image.Image](64)
//	img, err := c.GetOrCreate(path, func() (image.Image, error) {
//	    return decode(path)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
