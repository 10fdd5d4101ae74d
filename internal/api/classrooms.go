package api

import (
	"fmt"
	"strconv"
)

// --- Classroom Methods ---

func (c *Client) ListClassrooms(skip, limit int) ([]Classroom, error) {
	params := QueryParams{}
	if skip > 0 {
		params["skip"] = strconv.Itoa(skip)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	data, err := c.get(buildQuery("/classrooms/", params))
	if err != nil {
		return nil, err
	}
	return decodeList[Classroom](data)
}

func (c *Client) GetClassroom(id int) (*Classroom, error) {
	data, err := c.get(fmt.Sprintf("/classrooms/%d", id))
	if err != nil {
		return nil, err
	}
	return decodeOne[Classroom](data)
}

func (c *Client) CreateClassroom(input ClassroomCreate) (*Classroom, error) {
	data, err := c.post("/classrooms/", input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Classroom](data)
}

func (c *Client) UpdateClassroom(id int, input ClassroomUpdate) (*Classroom, error) {
	data, err := c.patch(fmt.Sprintf("/classrooms/%d", id), input)
	if err != nil {
		return nil, err
	}
	return decodeOne[Classroom](data)
}

func (c *Client) DeleteClassroom(id int) error {
	_, err := c.del(fmt.Sprintf("/classrooms/%d", id))
	return err
}
