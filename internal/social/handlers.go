package social

import (
	"context"
	"errors"
	"strconv"

	"backend-socialnet/internal/db"
	"backend-socialnet/internal/model"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	registerUserRoutes(r.Group("/users"), svc, authMiddleware)
	registerPostRoutes(r.Group("/posts"), svc, authMiddleware)
	registerMediaRoutes(r.Group("/media"), svc, authMiddleware)
	registerCommentRoutes(r.Group("/comments"), svc, authMiddleware)
	registerFollowerRoutes(r.Group("/followers"), svc, authMiddleware)
}

func registerUserRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		users, err := svc.ListUsers(c.Context())
		if err != nil {
			return storageError(err)
		}
		return c.JSON(model.SerializeAll(users))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req UserInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		user, err := svc.CreateUser(c.Context(), req.toModel())
		if err != nil {
			return storageError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(user.Serialize())
	})

	r.Get("/:id", getOne(svc.GetUser))

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		var req UserInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		user, err := svc.UpdateUser(c.Context(), id, req.toModel())
		if err != nil {
			return storageError(err)
		}
		return c.JSON(user.Serialize())
	})

	r.Delete("/:id", authMiddleware, deleteOne(svc.DeleteUser))

	r.Get("/:id/posts", getMany(svc.UserPosts))
	r.Get("/:id/comments", getMany(svc.UserComments))
	r.Get("/:id/media", getMany(svc.UserMedia))
	r.Get("/:id/following", getMany(svc.Following))
	r.Get("/:id/followers", getMany(svc.Followers))
}

func registerPostRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.Context())
		if err != nil {
			return storageError(err)
		}
		return c.JSON(model.SerializeAll(posts))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req PostInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := svc.CreatePost(c.Context(), model.Post{UserID: req.UserID})
		if err != nil {
			return storageError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(post.Serialize())
	})

	r.Get("/:id", getOne(svc.GetPost))
	r.Delete("/:id", authMiddleware, deleteOne(svc.DeletePost))
	r.Get("/:id/user", getOne(svc.PostUser))
	r.Get("/:id/comments", getMany(svc.PostComments))
	r.Get("/:id/media", getMany(svc.PostMedia))
}

func registerMediaRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req MediaInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		typ, err := model.ParseMediaType(req.Type)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		media, err := svc.CreateMedia(c.Context(), model.Media{Type: typ, URL: req.URL, PostID: req.PostID, UserID: req.UserID})
		if err != nil {
			return storageError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(media.Serialize())
	})

	r.Get("/:id", getOne(svc.GetMedia))

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		var req MediaInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		typ, err := model.ParseMediaType(req.Type)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		media, err := svc.UpdateMedia(c.Context(), id, model.Media{Type: typ, URL: req.URL})
		if err != nil {
			return storageError(err)
		}
		return c.JSON(media.Serialize())
	})

	r.Delete("/:id", authMiddleware, deleteOne(svc.DeleteMedia))
	r.Get("/:id/post", getOne(svc.MediaPost))
	r.Get("/:id/user", getOne(svc.MediaUser))
}

func registerCommentRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CommentInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		comment, err := svc.CreateComment(c.Context(), model.Comment{CommentText: req.CommentText, AuthorID: req.AuthorID, PostID: req.PostID})
		if err != nil {
			return storageError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment.Serialize())
	})

	r.Get("/:id", getOne(svc.GetComment))

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		var req CommentInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		comment, err := svc.UpdateComment(c.Context(), id, req.CommentText)
		if err != nil {
			return storageError(err)
		}
		return c.JSON(comment.Serialize())
	})

	r.Delete("/:id", authMiddleware, deleteOne(svc.DeleteComment))
	r.Get("/:id/author", getOne(svc.CommentAuthor))
	r.Get("/:id/post", getOne(svc.CommentPost))
}

func registerFollowerRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req FollowInput
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		f, err := svc.Follow(c.Context(), req.UserFromID, req.UserToID)
		if err != nil {
			return storageError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(f.Serialize())
	})

	r.Get("/:id", getOne(svc.GetFollower))
	r.Delete("/:id", authMiddleware, deleteOne(svc.Unfollow))
	r.Get("/:id/follower_user", getOne(svc.FollowerUser))
	r.Get("/:id/followed_user", getOne(svc.FollowedUser))
}

func getOne[T model.Serializer](load func(context.Context, int64) (T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		row, err := load(c.Context(), id)
		if err != nil {
			return storageError(err)
		}
		return c.JSON(row.Serialize())
	}
}

func getMany[T model.Serializer](load func(context.Context, int64) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		rows, err := load(c.Context(), id)
		if err != nil {
			return storageError(err)
		}
		return c.JSON(model.SerializeAll(rows))
	}
}

func deleteOne(remove func(context.Context, int64) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		if err := remove(c.Context(), id); err != nil {
			return storageError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// storageError maps storage error kinds onto HTTP statuses.
func storageError(err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrUniqueViolation):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, db.ErrForeignKeyViolation),
		errors.Is(err, db.ErrNotNullViolation),
		errors.Is(err, db.ErrValueTooLong),
		errors.Is(err, db.ErrInvalidValue):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
