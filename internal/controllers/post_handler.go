package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/dto"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/models"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/utils"
)

const msgPostNotFound = "Post not found"

type PostHandler struct {
	Svc *services.PostService
}

// GET /posts?page=&tag=&sortByPopularity=

// List godoc
// @Summary      List posts
// @Description  Five posts per page, newest first or by votes (upVote - downVote) when sortByPopularity=true
// @Tags         posts
// @Produce      json
// @Param        page              query  int     false  "Page number (default 1)"
// @Param        tag               query  string  false  "Exact tag filter"
// @Param        sortByPopularity  query  string  false  "\"true\" to sort by votes"
// @Success      200  {object}  dto.PostsPageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	page, err := h.Svc.ListPosts(c.UserContext(), services.ListPostsRequest{
		Page:             utils.ParsePage(c.Query("page")),
		Tag:              c.Query("tag"),
		SortByPopularity: c.Query("sortByPopularity") == "true",
	})
	if err != nil {
		return fail(c, err, msgPostNotFound, "Server Error")
	}
	return c.JSON(dto.PostsPageResponse{Posts: page.Posts, TotalPages: page.TotalPages})
}

// GET /posts/id/:id

// GetByID godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/id/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.Svc.GetPostByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err, msgPostNotFound, msgServerError)
	}
	return c.JSON(post)
}

// GET /posts/:email

// ListByAuthor godoc
// @Summary      List a user's posts
// @Tags         posts
// @Produce      json
// @Param        email  path      string  true  "Author email"
// @Success      200    {array}   models.Post
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /posts/{email} [get]
func (h *PostHandler) ListByAuthor(c *fiber.Ctx) error {
	posts, err := h.Svc.ListPostsByAuthor(c.UserContext(), c.Params("email"))
	if err != nil {
		return fail(c, err, "User not found", msgServerError)
	}
	return c.JSON(posts)
}

// POST /posts

// Create godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  dto.InsertedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	id, err := h.Svc.CreatePost(c.UserContext(), services.CreatePostRequest{
		AuthorImage: body.AuthorImage,
		AuthorName:  body.AuthorName,
		AuthorEmail: body.AuthorEmail,
		Title:       body.Title,
		Description: body.Description,
		Tag:         body.Tag,
		UpVote:      body.UpVote,
		DownVote:    body.DownVote,
	})
	if err != nil {
		return fail(c, err, msgPostNotFound, "Error adding post")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: id.Hex()})
}

// PATCH /posts/upvote/:id

// Upvote godoc
// @Summary      Upvote a post
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/upvote/{id} [patch]
func (h *PostHandler) Upvote(c *fiber.Ctx) error {
	return h.vote(c, models.UpVote)
}

// PATCH /posts/downvote/:id

// Downvote godoc
// @Summary      Downvote a post
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID (hex)"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /posts/downvote/{id} [patch]
func (h *PostHandler) Downvote(c *fiber.Ctx) error {
	return h.vote(c, models.DownVote)
}

func (h *PostHandler) vote(c *fiber.Ctx, field models.VoteField) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post ID")
	}
	post, err := h.Svc.Vote(c.UserContext(), id, field)
	if err != nil {
		return fail(c, err, msgPostNotFound, msgServerError)
	}
	return c.JSON(post)
}

// POST /posts/comment/:id

// Comment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post ID (hex)"
// @Param        data  body      dto.CommentDTO  true  "Comment"
// @Success      200   {object}  models.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts/comment/{id} [post]
func (h *PostHandler) Comment(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post ID")
	}
	var body dto.CommentDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	post, err := h.Svc.AddComment(c.UserContext(), id, body.Comment)
	if err != nil {
		return fail(c, err, msgPostNotFound, msgServerError)
	}
	return c.JSON(post)
}
